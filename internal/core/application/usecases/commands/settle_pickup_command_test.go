package commands_test

import (
	"testing"

	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettlePickupCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	report := testReport(t)

	cmd, err := commands.NewSettlePickupCommand(orderID, report)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, report, cmd.Report())
}

func TestNewSettlePickupCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewSettlePickupCommand(kernel.UUID{}, testReport(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSettlePickupCommand_UnconstructedReport(t *testing.T) {
	_, err := commands.NewSettlePickupCommand(kernel.NewUUID(), order.PickupReport{})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrPickupReportIsNotConstructed)
}

func TestSettlePickupCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SettlePickupCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSettlePickupCommandIsNotConstructed)
}
