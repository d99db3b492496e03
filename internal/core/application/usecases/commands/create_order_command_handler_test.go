package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	propertyID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, propertyID, testItems(t), true, order.UrgencyUrgent)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID().IsEqual(orderID) &&
			o.Status() == order.Pending &&
			o.Urgency() == order.UrgencyUrgent &&
			!o.PickupCompleted()
	})).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
		return e.OrderID.IsEqual(orderID) && e.PropertyID.IsEqual(propertyID) && e.Status == order.Pending
	})).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(passthroughFactory(repo), publisher, slog.Default())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateOrderCommand // not constructed properly

	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), nil, slog.Default())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), testItems(t), true, order.UrgencyNormal)
	require.NoError(t, err)

	addErr := errors.New("duplicate key")
	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(addErr).Once()

	h := commands.NewCreateOrderCommandHandler(passthroughFactory(repo), nil, slog.Default())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, addErr)
}
