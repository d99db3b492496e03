package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/domain/services"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testReport(t *testing.T) order.PickupReport {
	t.Helper()

	report, err := order.NewPickupReport(order.PickupOutcomeCollected, "", nil)
	require.NoError(t, err)
	return report
}

func TestSettlePickupCommandHandler_Handle_RetiresRefreshedDebt(t *testing.T) {
	ctx := t.Context()
	propertyID := kernel.NewUUID()
	delivering := testInTransitOrder(t, propertyID, kernel.NewUUID())
	sourceA := testDeliveredOrder(t, propertyID)
	sourceB := testDeliveredOrder(t, propertyID)

	cmd, err := commands.NewSettlePickupCommand(delivering.ID(), testReport(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, delivering.ID()).Return(delivering, nil).Once()
	repo.On("GetDebtSet", mock.Anything, propertyID).
		Return([]*order.Order{sourceA, sourceB}, nil).Once()
	repo.On("Update", mock.Anything, delivering).Return(nil).Once()
	repo.On("Get", mock.Anything, sourceA.ID()).Return(sourceA, nil).Once()
	repo.On("UpdateSettlement", mock.Anything, sourceA).Return(nil).Once()
	repo.On("Get", mock.Anything, sourceB.ID()).Return(sourceB, nil).Once()
	repo.On("UpdateSettlement", mock.Anything, sourceB).Return(nil).Once()

	h := commands.NewSettlePickupCommandHandler(
		passthroughFactory(repo), services.NewPickupReconciler(), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivering.Status())
	assert.True(t, delivering.IsPickupDebtSource(), "delivering order now owes its own linen")
	assert.True(t, sourceA.PickupCompleted())
	assert.True(t, sourceB.PickupCompleted())
	assert.True(t, sourceA.PickupCompletedInOrderID().IsEqual(delivering.ID()))
	repo.AssertExpectations(t)
}

func TestSettlePickupCommandHandler_Handle_ScatterContinuesPastFailure(t *testing.T) {
	ctx := t.Context()
	propertyID := kernel.NewUUID()
	delivering := testInTransitOrder(t, propertyID, kernel.NewUUID())
	failing := testDeliveredOrder(t, propertyID)
	succeeding := testDeliveredOrder(t, propertyID)

	cmd, err := commands.NewSettlePickupCommand(delivering.ID(), testReport(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, delivering.ID()).Return(delivering, nil).Once()
	repo.On("GetDebtSet", mock.Anything, propertyID).
		Return([]*order.Order{failing, succeeding}, nil).Once()
	repo.On("Update", mock.Anything, delivering).Return(nil).Once()
	repo.On("Get", mock.Anything, failing.ID()).
		Return(nil, errors.New("connection reset")).Once()
	repo.On("Get", mock.Anything, succeeding.ID()).Return(succeeding, nil).Once()
	repo.On("UpdateSettlement", mock.Anything, succeeding).Return(nil).Once()

	h := commands.NewSettlePickupCommandHandler(
		passthroughFactory(repo), services.NewPickupReconciler(), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	// Partial scatter failure is not surfaced to the courier.
	require.NoError(t, err)
	assert.False(t, failing.PickupCompleted(), "failed write leaves debt outstanding")
	assert.True(t, succeeding.PickupCompleted())
	repo.AssertExpectations(t)
}

func TestSettlePickupCommandHandler_Handle_AlreadySettledSourceIsIdempotent(t *testing.T) {
	ctx := t.Context()
	propertyID := kernel.NewUUID()
	delivering := testInTransitOrder(t, propertyID, kernel.NewUUID())
	source := testDeliveredOrder(t, propertyID)

	cmd, err := commands.NewSettlePickupCommand(delivering.ID(), testReport(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, delivering.ID()).Return(delivering, nil).Once()
	repo.On("GetDebtSet", mock.Anything, propertyID).
		Return([]*order.Order{source}, nil).Once()
	repo.On("Update", mock.Anything, delivering).Return(nil).Once()
	repo.On("Get", mock.Anything, source.ID()).Return(source, nil).Once()
	repo.On("UpdateSettlement", mock.Anything, source).Return(ports.ErrPickupAlreadySettled).Once()

	h := commands.NewSettlePickupCommandHandler(
		passthroughFactory(repo), services.NewPickupReconciler(), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSettlePickupCommandHandler_Handle_NoDebtMeansNoScatter(t *testing.T) {
	ctx := t.Context()
	propertyID := kernel.NewUUID()
	delivering := testInTransitOrder(t, propertyID, kernel.NewUUID())

	cmd, err := commands.NewSettlePickupCommand(delivering.ID(), testReport(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, delivering.ID()).Return(delivering, nil).Once()
	repo.On("GetDebtSet", mock.Anything, propertyID).Return([]*order.Order{}, nil).Once()
	repo.On("Update", mock.Anything, delivering).Return(nil).Once()

	h := commands.NewSettlePickupCommandHandler(
		passthroughFactory(repo), services.NewPickupReconciler(), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateSettlement", mock.Anything, mock.Anything)
}

func TestSettlePickupCommandHandler_Handle_PureDeliveryRetiresNoDebt(t *testing.T) {
	ctx := t.Context()
	propertyID := kernel.NewUUID()
	delivering := testPureDeliveryInTransitOrder(t, propertyID)
	source := testDeliveredOrder(t, propertyID)
	require.True(t, source.IsPickupDebtSource())

	cmd, err := commands.NewSettlePickupCommand(delivering.ID(), testReport(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, delivering.ID()).Return(delivering, nil).Once()
	repo.On("Update", mock.Anything, delivering).Return(nil).Once()

	h := commands.NewSettlePickupCommandHandler(
		passthroughFactory(repo), services.NewPickupReconciler(), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivering.Status())
	assert.Equal(t, order.PickupOutcomeUnknown, delivering.PickupOutcome(),
		"no pickup report is recorded on a pure-delivery order")
	assert.False(t, source.PickupCompleted(), "the debt persists for the next pickup-eligible order")
	repo.AssertNotCalled(t, "GetDebtSet", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateSettlement", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSettlePickupCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewSettlePickupCommand(orderID, testReport(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	h := commands.NewSettlePickupCommandHandler(
		passthroughFactory(repo), services.NewPickupReconciler(), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestSettlePickupCommandHandler_Handle_NotInTransit(t *testing.T) {
	ctx := t.Context()
	propertyID := kernel.NewUUID()
	delivering := testPendingOrder(t, propertyID)

	cmd, err := commands.NewSettlePickupCommand(delivering.ID(), testReport(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, delivering.ID()).Return(delivering, nil).Once()
	repo.On("GetDebtSet", mock.Anything, propertyID).Return([]*order.Order{}, nil).Once()

	h := commands.NewSettlePickupCommandHandler(
		passthroughFactory(repo), services.NewPickupReconciler(), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
