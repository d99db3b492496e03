package commands

import (
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/pkg/guard"
)

var (
	ErrReleaseOrderCommandIsNotConstructed = errors.New(
		"ReleaseOrderCommand must be created via NewReleaseOrderCommand constructor",
	)
)

// ReleaseOrderCommand represents a courier backing out of a claimed order
// before departing: the order returns to the claimable pool, no penalty.
type ReleaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseOrderCommand creates a validated release command.
func NewReleaseOrderCommand(orderID kernel.UUID) (ReleaseOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReleaseOrderCommand{}, err
	}

	return ReleaseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseOrderCommandIsNotConstructed if validation fails.
func (c ReleaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrderCommandIsNotConstructed)
}

// OrderID returns the order being released.
func (c ReleaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
