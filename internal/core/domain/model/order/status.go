package order

import (
	"fmt"

	"linenflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a linen delivery order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──────> Picking ──> InTransit ──> Delivered
//	   ^               │
//	Assigned ──────────┤
//	   │               │
//	   └───── release ─┘
//
// An order is claimed into Picking from either Pending or Assigned,
// may be released back to Pending while still Picking, departs into
// InTransit, and terminates in Delivered. Delivered is final: no
// transition leaves it.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be claimed by a courier.
	Pending

	// Assigned indicates the order was pre-assigned by an external
	// scheduling workflow but has not yet been claimed.
	// For claim eligibility it behaves exactly like Pending.
	Assigned

	// Picking indicates a courier has claimed the order and is
	// preparing the linen for the trip. A Picking order may still be
	// released back to Pending without penalty.
	Picking

	// InTransit indicates the courier has departed with the order.
	InTransit

	// Delivered indicates the clean linen has been handed over.
	// This is a final state with no further transitions; a Delivered
	// order becomes a pickup-debt source until its linen is reclaimed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		Picking:   "Picking",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		Picking:   "Picking",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, Picking, InTransit, Delivered.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsOpen reports whether the status makes the order eligible to be
// claimed or to receive a pickup projection.
//
// This is the single eligibility predicate shared by the reconciliation
// engine and the read projections; keeping it in one place prevents the
// two from diverging.
//
// Returns true only for Pending and Assigned.
func (s Status) IsOpen() bool {
	return s == Pending || s == Assigned
}

// ValidateClaim checks if the status allows a courier claim without
// performing the transition.
//
// Valid statuses for a claim are Pending and Assigned. Picking,
// InTransit and Delivered orders cannot be claimed.
//
// Returns:
//   - nil if a claim is allowed from the current status
//   - error with details if a claim is not allowed
func (s Status) ValidateClaim() error {
	if !s.IsOpen() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status
// and courier ownership.
//
// Business rules:
//   - Pending orders must not have an owning courier
//   - Assigned orders may or may not have one (pre-assignment is allowed)
//   - Picking, InTransit and Delivered orders must have one
//
// Parameters:
//   - courier: whether the order has an owning courier
//
// Returns:
//   - error: validation error if status and courier ownership are inconsistent
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Picking || s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Claim transitions the status to Picking.
//
// Valid transitions:
//   - Pending -> Picking
//   - Assigned -> Picking
//
// Returns:
//   - (Picking, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Claim() (Status, error) {
	if err := s.ValidateClaim(); err != nil {
		return 0, err
	}

	return Picking, nil
}

// Release transitions the status back to Pending.
//
// Valid transitions:
//   - Picking -> Pending (courier backs out before departing)
//
// Release is fully reversible and carries no penalty; the order
// returns to the pool of claimable work.
//
// Returns:
//   - (Pending, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Release() (Status, error) {
	if s != Picking {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Pending, nil
}

// Depart transitions the status to InTransit.
//
// Valid transitions:
//   - Picking -> InTransit (courier leaves with the load)
//
// Returns:
//   - (InTransit, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Depart() (Status, error) {
	if s != Picking {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to depart", s.String()),
		)
	}

	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Delivered is a final state with no further transitions possible.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
