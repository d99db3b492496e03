package commands

import (
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/pkg/guard"
)

var (
	ErrSettlePickupCommandIsNotConstructed = errors.New(
		"SettlePickupCommand must be created via NewSettlePickupCommand constructor",
	)
)

// SettlePickupCommand represents a courier confirming both a delivery and an
// actual pickup for an order: the clean linen was handed over and the dirty
// linen owed at the property was retrieved.
//
// The attached report records what the courier found; it is audit data only
// and never decides which debt gets retired, because the handler recomputes
// that from fresh reads.
type SettlePickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	report  order.PickupReport

	guard guard.ConstructorGuard
}

// NewSettlePickupCommand creates a validated settle command.
// The report must have been created via order.NewPickupReport.
func NewSettlePickupCommand(orderID kernel.UUID, report order.PickupReport) (SettlePickupCommand, error) {
	cmd := SettlePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		report.Validate(),
	); err != nil {
		return SettlePickupCommand{}, err
	}

	cmd.orderID = orderID
	cmd.report = report
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSettlePickupCommandIsNotConstructed if validation fails.
func (c SettlePickupCommand) Validate() error {
	return c.guard.Validate(ErrSettlePickupCommandIsNotConstructed)
}

// OrderID returns the delivering order.
func (c SettlePickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Report returns the courier's pickup report.
func (c SettlePickupCommand) Report() order.PickupReport {
	return c.report
}
