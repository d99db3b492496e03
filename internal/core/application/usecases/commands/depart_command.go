package commands

import (
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/pkg/guard"
)

var (
	ErrDepartCommandIsNotConstructed = errors.New(
		"DepartCommand must be created via NewDepartCommand constructor",
	)
)

// DepartCommand represents a courier leaving with their whole load: every
// Picking order they own departs in one logical operation.
type DepartCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDepartCommand creates a validated depart command for the courier.
func NewDepartCommand(courierID kernel.UUID) (DepartCommand, error) {
	if err := courierID.Validate(); err != nil {
		return DepartCommand{}, err
	}

	return DepartCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDepartCommandIsNotConstructed if validation fails.
func (c DepartCommand) Validate() error {
	return c.guard.Validate(ErrDepartCommandIsNotConstructed)
}

// CourierID returns the departing courier.
func (c DepartCommand) CourierID() kernel.UUID {
	return c.courierID
}
