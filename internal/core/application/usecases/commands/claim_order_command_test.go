package commands_test

import (
	"testing"

	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(orderID, courierID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, courierID, cmd.CourierID())
}

func TestNewClaimOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewClaimOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewClaimOrderCommand_InvalidCourierID(t *testing.T) {
	_, err := commands.NewClaimOrderCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestClaimOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ClaimOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClaimOrderCommandIsNotConstructed)
}
