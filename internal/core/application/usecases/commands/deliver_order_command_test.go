package commands_test

import (
	"testing"

	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliverOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
}

func TestNewDeliverOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewDeliverOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeliverOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeliverOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliverOrderCommandIsNotConstructed)
}
