package commands

import (
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/pkg/errs"
	"linenflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents the intake of a new delivery order from the
// external ordering workflow. Orders always enter the system in Pending
// status with no owning courier.
//
// Example:
//
//	items := []order.Item{sheet, towel}
//	cmd, err := NewCreateOrderCommand(orderID, propertyID, items, true, order.UrgencyNormal)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	propertyID    kernel.UUID
	items         []order.Item
	includePickup bool
	urgency       order.Urgency

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order intake command.
// Requires valid order and property identifiers, at least one item created
// via order.NewItem, and a valid urgency.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	propertyID kernel.UUID,
	items []order.Item,
	includePickup bool,
	urgency order.Urgency,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		propertyID.Validate(),
		urgency.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	cmd.orderID = orderID
	cmd.propertyID = propertyID
	cmd.items = append([]order.Item(nil), items...)
	cmd.includePickup = includePickup
	cmd.urgency = urgency
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PropertyID returns the property the order serves.
func (c CreateOrderCommand) PropertyID() kernel.UUID {
	return c.propertyID
}

// Items returns a copy of the line items being delivered.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// IncludePickup reports whether the order participates in pickup reconciliation.
func (c CreateOrderCommand) IncludePickup() bool {
	return c.includePickup
}

// Urgency returns the delivery priority.
func (c CreateOrderCommand) Urgency() order.Urgency {
	return c.urgency
}
