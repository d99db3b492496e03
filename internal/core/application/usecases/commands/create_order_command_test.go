package commands_test

import (
	"testing"

	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	propertyID := kernel.NewUUID()
	items := testItems(t)

	cmd, err := commands.NewCreateOrderCommand(orderID, propertyID, items, true, order.UrgencyUrgent)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, propertyID, cmd.PropertyID())
	assert.Equal(t, items, cmd.Items())
	assert.True(t, cmd.IncludePickup())
	assert.Equal(t, order.UrgencyUrgent, cmd.Urgency())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), testItems(t), true, order.UrgencyNormal)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidPropertyID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, testItems(t), true, order.UrgencyNormal)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, true, order.UrgencyNormal)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidUrgency(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testItems(t), true, order.UrgencyUnknown)
	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
