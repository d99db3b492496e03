package order

import (
	"errors"
	"fmt"
	"time"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyClaimed is returned when a claim is attempted on an order
	// that is already owned by a different courier.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed by another courier")

	// ErrPickupAlreadyCompleted is returned when settlement is attempted on an
	// order whose delivered linen has already been reclaimed. The pickupCompleted
	// flag is monotonic: once true it never goes back to false.
	ErrPickupAlreadyCompleted = errors.New("pickup is already completed for this order")
)

// Order represents a linen delivery order in the system. It is the aggregate root
// that manages the order lifecycle from creation through claim, departure and delivery,
// and afterwards acts as a pickup-debt source until the linen it delivered is reclaimed
// by a later order at the same property.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and property identifier
//   - Must carry at least one line item
//   - Status transitions follow the defined state machine (see Status)
//   - pickupCompleted is monotonic: false -> true, never reversed
//   - The settlement audit fields are written at most once
//   - Can only be created through NewOrder or RestoreOrder
//
// The derived pickup projection (which dirty items this order is expected to
// retrieve, and from which source orders) is deliberately NOT part of this
// aggregate. It is a recomputed read model owned by the reconciliation
// engine; mixing it into the persistent record would invite trust in stale
// derived data.
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// propertyID identifies the rental property this order serves
	propertyID kernel.UUID

	// courierID is the owning courier's ID (nil if unclaimed)
	courierID *kernel.UUID

	// items is the clean linen and products being delivered
	items []Item

	// includePickup controls participation in pickup reconciliation;
	// when false the order is a pure delivery and never receives projected debt
	includePickup bool

	// urgency affects read-projection sort order only
	urgency Urgency

	// status represents the current state in the order lifecycle
	status Status

	// pickupCompleted is the authoritative flag meaning "the linen this
	// order delivered has been retrieved by a later order"
	pickupCompleted bool

	// pickupCompletedAt and pickupCompletedInOrderID are the settlement
	// audit trail, written once by whichever later order performs the pickup
	pickupCompletedAt        *time.Time
	pickupCompletedInOrderID *kernel.UUID

	// pickupOutcome, pickupNote and pickupHasIssues record what the courier
	// actually found when this order itself performed a pickup
	pickupOutcome   PickupOutcome
	pickupNote      string
	pickupHasIssues bool

	// lifecycle timestamps
	createdAt   time.Time
	startedAt   *time.Time
	departedAt  *time.Time
	deliveredAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. Together with
// RestoreOrder this is the only way to obtain a valid Order.
//
// Parameters:
//   - id: unique identifier for the order (must be valid UUID)
//   - propertyID: the rental property served (must be valid UUID)
//   - items: the line items being delivered (at least one, created via NewItem)
//   - includePickup: whether the order participates in pickup reconciliation
//   - urgency: delivery priority
//   - createdAt: creation timestamp (must not be zero)
//
// The order starts in Pending status with no owning courier and
// pickupCompleted=false.
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	propertyID kernel.UUID,
	items []Item,
	includePickup bool,
	urgency Urgency,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		includePickup: includePickup,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPropertyID(propertyID),
		order.setItems(items),
		order.setUrgency(urgency),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrderParams carries every persisted field needed to reconstruct an
// Order aggregate from storage. Used only by repository implementations.
type RestoreOrderParams struct {
	ID                       kernel.UUID
	PropertyID               kernel.UUID
	CourierID                *kernel.UUID
	Items                    []Item
	IncludePickup            bool
	Urgency                  Urgency
	Status                   Status
	PickupCompleted          bool
	PickupCompletedAt        *time.Time
	PickupCompletedInOrderID *kernel.UUID
	PickupOutcome            PickupOutcome
	PickupNote               string
	PickupHasIssues          bool
	CreatedAt                time.Time
	StartedAt                *time.Time
	DepartedAt               *time.Time
	DeliveredAt              *time.Time
}

// RestoreOrder reconstructs an Order from persistence, re-validating every
// invariant that NewOrder enforces plus the consistency rules between
// status, courier ownership and the settlement audit fields.
//
// Returns an error when the persisted state violates any invariant, which
// signals storage corruption rather than a business failure.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		includePickup: params.IncludePickup,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setPropertyID(params.PropertyID),
		order.setItems(params.Items),
		order.setUrgency(params.Urgency),
		order.setCreatedAt(params.CreatedAt),
		params.Status.Validate(),
		params.Status.ValidateCanHaveCourier(params.CourierID != nil),
	); err != nil {
		return nil, err
	}

	if params.CourierID != nil {
		if err := params.CourierID.Validate(); err != nil {
			return nil, err
		}
	}

	if params.PickupCompleted {
		if params.Status != Delivered {
			return nil, errs.NewValueIsInvalidErrorWithCause("pickupCompleted is invalid",
				fmt.Errorf("%s is not a valid status to have a completed pickup", params.Status))
		}
		if params.PickupCompletedAt == nil || params.PickupCompletedInOrderID == nil {
			return nil, errs.NewValueIsRequiredError("pickup settlement audit fields")
		}
		if err := params.PickupCompletedInOrderID.Validate(); err != nil {
			return nil, err
		}
	}

	order.courierID = params.CourierID
	order.status = params.Status
	order.pickupCompleted = params.PickupCompleted
	order.pickupCompletedAt = params.PickupCompletedAt
	order.pickupCompletedInOrderID = params.PickupCompletedInOrderID
	order.pickupOutcome = params.PickupOutcome
	order.pickupNote = params.PickupNote
	order.pickupHasIssues = params.PickupHasIssues
	order.startedAt = params.StartedAt
	order.departedAt = params.DepartedAt
	order.deliveredAt = params.DeliveredAt

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder/RestoreOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PropertyID returns the identifier of the property this order serves.
func (o *Order) PropertyID() kernel.UUID {
	return o.propertyID
}

// Courier returns the owning courier's ID.
// Returns nil while the order is unclaimed.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// IncludePickup reports whether this order participates in pickup reconciliation.
func (o *Order) IncludePickup() bool {
	return o.includePickup
}

// Urgency returns the delivery priority of the order.
func (o *Order) Urgency() Urgency {
	return o.urgency
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PickupCompleted reports whether the linen this order delivered has been
// reclaimed by a later order.
func (o *Order) PickupCompleted() bool {
	return o.pickupCompleted
}

// PickupCompletedAt returns the settlement timestamp, or nil before settlement.
func (o *Order) PickupCompletedAt() *time.Time {
	return o.pickupCompletedAt
}

// PickupCompletedInOrderID returns the ID of the later order that performed
// the pickup, or nil before settlement.
func (o *Order) PickupCompletedInOrderID() *kernel.UUID {
	return o.pickupCompletedInOrderID
}

// PickupOutcome returns what the courier found when this order performed a
// pickup, or PickupOutcomeUnknown if no pickup was reported.
func (o *Order) PickupOutcome() PickupOutcome {
	return o.pickupOutcome
}

// PickupNote returns the courier's pickup note, or empty.
func (o *Order) PickupNote() string {
	return o.pickupNote
}

// PickupHasIssues reports whether the courier flagged anything non-OK
// during this order's pickup.
func (o *Order) PickupHasIssues() bool {
	return o.pickupHasIssues
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns the claim timestamp, or nil while unclaimed.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// DepartedAt returns the departure timestamp, or nil before departure.
func (o *Order) DepartedAt() *time.Time {
	return o.departedAt
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// AvailableTo reports whether the order is eligible for the given courier:
// it is open (Pending or Assigned) and either unowned or already owned by
// that same courier.
//
// This predicate, not a stored flag, defines "available order" everywhere:
// read projections and claim validation both go through it.
func (o *Order) AvailableTo(courierID kernel.UUID) bool {
	if !o.status.IsOpen() {
		return false
	}
	return o.courierID == nil || o.courierID.IsEqual(courierID)
}

// IsPickupDebtSource reports whether the order currently owes dirty linen:
// it has been delivered and its pickup has not yet been completed.
// The reconciliation engine's debt set is exactly the orders for which this
// predicate holds at a property.
func (o *Order) IsPickupDebtSource() bool {
	return o.status == Delivered && !o.pickupCompleted
}

// Claim assigns the order to a courier and moves it to Picking.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must be open (Pending or Assigned)
//   - The order must have no other owning courier; claiming an order already
//     owned by the same courier is allowed and idempotent
//
// Parameters:
//   - courierID: the claiming courier
//   - at: claim timestamp, recorded as startedAt
//
// Returns:
//   - nil on successful claim
//   - ErrOrderAlreadyClaimed if another courier owns the order
//   - a status error if the transition is not allowed
//
// Note that two couriers racing for the same order are both able to pass
// this in-memory guard when each observes the unclaimed state; the
// repository's conditional claim write is what decides the winner and
// surfaces the conflict to the loser.
func (o *Order) Claim(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil && !o.courierID.IsEqual(courierID) {
		return ErrOrderAlreadyClaimed
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.startedAt = &at
	return nil
}

// Release returns a Picking order to the claimable pool.
//
// The owning courier is cleared and the claim timestamp reset; the
// transition is fully reversible and carries no penalty.
//
// Returns:
//   - nil on successful release
//   - a status error if the order is not currently Picking
func (o *Order) Release() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = nil
	o.startedAt = nil
	return nil
}

// Depart moves a Picking order to InTransit, recording the departure time.
//
// Departure is batched at the use-case level: every Picking order owned by
// one courier departs in a single logical operation implemented as
// independent per-order writes.
//
// Returns:
//   - nil on successful departure
//   - a status error if the order is not currently Picking
func (o *Order) Depart(at time.Time) error {
	newStatus, err := o.status.Depart()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.departedAt = &at
	return nil
}

// Deliver marks the order as delivered without a pickup report.
//
// Effects: status becomes Delivered, deliveredAt is recorded, and
// pickupCompleted is explicitly reset to false: from this moment the order
// is a pickup-debt source at its property until a later order settles it.
//
// Returns:
//   - nil on successful delivery
//   - a status error if the order is not currently InTransit
func (o *Order) Deliver(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	o.pickupCompleted = false
	return nil
}

// DeliverWithPickup marks the order as delivered and records the courier's
// pickup report in the audit fields.
//
// The report never blocks delivery: discrepancies between what was expected
// and what was found are recorded (pickupHasIssues) for later review, while
// debt accounting is handled separately by the settlement coordinator.
//
// Returns:
//   - nil on successful delivery
//   - ErrPickupReportIsNotConstructed if the report bypassed its constructor
//   - a status error if the order is not currently InTransit
func (o *Order) DeliverWithPickup(at time.Time, report PickupReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	if err := o.Deliver(at); err != nil {
		return err
	}

	o.pickupOutcome = report.Outcome()
	o.pickupNote = report.Note()
	o.pickupHasIssues = report.HasIssues()
	return nil
}

// CompletePickup settles this order's pickup debt: a later order at the same
// property has retrieved the linen this order delivered.
//
// Business rules:
//   - The order must be Delivered
//   - pickupCompleted is monotonic; a second settlement attempt fails with
//     ErrPickupAlreadyCompleted, which callers treat as already-done rather
//     than a failure (settlement writes are idempotent)
//
// Parameters:
//   - inOrderID: the delivering order that performed the pickup
//   - at: settlement timestamp
//
// Returns:
//   - nil on successful settlement
//   - ErrPickupAlreadyCompleted if the debt was already settled
//   - a status error if the order has not been delivered
func (o *Order) CompletePickup(inOrderID kernel.UUID, at time.Time) error {
	if err := inOrderID.Validate(); err != nil {
		return err
	}

	if o.status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete a pickup", o.status))
	}

	if o.pickupCompleted {
		return ErrPickupAlreadyCompleted
	}

	o.pickupCompleted = true
	o.pickupCompletedAt = &at
	o.pickupCompletedInOrderID = &inOrderID
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setPropertyID validates and sets the served property's identifier.
// This is a private method used only during construction.
func (o *Order) setPropertyID(propertyID kernel.UUID) error {
	if err := propertyID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("propertyID is invalid", err)
	}
	o.propertyID = propertyID
	return nil
}

// setItems validates and sets the order's line items.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if err := validateItems(items); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("items are invalid", err)
	}
	o.items = append([]Item(nil), items...)
	return nil
}

// setUrgency validates and sets the order's urgency.
// This is a private method used only during construction.
func (o *Order) setUrgency(urgency Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	o.urgency = urgency
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
