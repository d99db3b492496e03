package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"
	"linenflow/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := testPendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), courierID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("UpdateClaim", mock.Anything, aggregate).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
		return e.OrderID.IsEqual(aggregate.ID()) && e.Status == order.Picking
	})).Return(nil).Once()

	published := testutil.ToFloat64(metrics.OrderEventsPublished.WithLabelValues(metrics.ResultOK))

	h := commands.NewClaimOrderCommandHandler(passthroughFactory(repo), publisher, slog.Default())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Picking, aggregate.Status())
	assert.True(t, aggregate.Courier().IsEqual(courierID))
	assert.Equal(t, published+1,
		testutil.ToFloat64(metrics.OrderEventsPublished.WithLabelValues(metrics.ResultOK)))
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.ClaimOrderCommand // not constructed properly

	h := commands.NewClaimOrderCommandHandler(new(MockOrderUoWFactory), nil, slog.Default())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestClaimOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	h := commands.NewClaimOrderCommandHandler(passthroughFactory(repo), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestClaimOrderCommandHandler_Handle_AlreadyClaimedAtRead(t *testing.T) {
	ctx := t.Context()
	aggregate := testPickingOrder(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewClaimOrderCommandHandler(passthroughFactory(repo), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrOrderClaimConflict)
	repo.AssertNotCalled(t, "UpdateClaim", mock.Anything, mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_LostRaceAtWrite(t *testing.T) {
	ctx := t.Context()
	aggregate := testPendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("UpdateClaim", mock.Anything, aggregate).Return(ports.ErrClaimConflict).Once()

	h := commands.NewClaimOrderCommandHandler(passthroughFactory(repo), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrOrderClaimConflict)
}

func TestClaimOrderCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	aggregate := testPendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repoErr := errors.New("connection reset")
	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("UpdateClaim", mock.Anything, aggregate).Return(repoErr).Once()

	h := commands.NewClaimOrderCommandHandler(passthroughFactory(repo), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, commands.ErrOrderClaimConflict)
}

func TestClaimOrderCommandHandler_Handle_PublishFailureDoesNotFailClaim(t *testing.T) {
	ctx := t.Context()
	aggregate := testPendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("UpdateClaim", mock.Anything, aggregate).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	failed := testutil.ToFloat64(metrics.OrderEventsPublished.WithLabelValues(metrics.ResultFailed))

	h := commands.NewClaimOrderCommandHandler(passthroughFactory(repo), publisher, slog.Default())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, failed+1,
		testutil.ToFloat64(metrics.OrderEventsPublished.WithLabelValues(metrics.ResultFailed)))
	publisher.AssertExpectations(t)
}
