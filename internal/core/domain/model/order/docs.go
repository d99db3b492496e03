// Package order provides domain entities and business logic for linen order
// management in the delivery system. It implements the Order aggregate root
// with lifecycle management, state transitions, and the authoritative side of
// pickup-debt accounting.
//
// The package includes:
//   - Order: the aggregate root managing identity, line items, lifecycle and settlement audit
//   - Status: a state machine enforcing valid order status transitions
//   - Item: a value object describing one delivered line item
//   - PickupReport: a value object capturing what a courier found when performing a pickup
//   - Urgency: a priority value affecting read-projection sort order only
//
// Key business rules:
//   - Orders must have a valid unique identifier, property, and at least one item
//   - Order status follows a defined workflow: Pending/Assigned -> Picking -> InTransit -> Delivered
//   - A Picking order may be released back to Pending without penalty
//   - A Delivered order owes its linen as pickup debt until settled exactly once
//   - pickupCompleted is monotonic and never reverts to false
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
