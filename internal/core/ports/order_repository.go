package ports

import (
	"context"
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
)

var (
	// ErrClaimConflict is returned by UpdateClaim when the conditional write
	// finds the order already owned by another courier: a second courier won
	// the race between this courier's read and its write.
	ErrClaimConflict = errors.New("order was claimed by another courier")

	// ErrPickupAlreadySettled is returned by UpdateSettlement when the
	// conditional write finds pickup_completed already true. Callers treat
	// it as already-done: settlement writes are idempotent.
	ErrPickupAlreadySettled = errors.New("pickup was already settled")
)

// OrderRepository defines the persistence contract for order aggregates.
// The order collection is the only shared mutable resource in the system;
// encapsulating every read and write behind this interface keeps the state
// machine and the reconciliation engine independent of the consistency
// strategy the adapter implements.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateClaim persists a claim transition conditionally: the write
	// succeeds only if the stored order still has no owning courier (or is
	// already owned by the claiming courier) and is still open. When the
	// precondition no longer holds, ErrClaimConflict is returned and the
	// stored order is left untouched; the losing courier sees the conflict
	// instead of silently overwriting the winner.
	UpdateClaim(ctx context.Context, aggregate *order.Order) error

	// UpdateSettlement persists a pickup settlement conditionally: the write
	// succeeds only if the stored order's pickup_completed flag is still
	// false, keeping the flag monotonic under concurrent settlements.
	// Returns ErrPickupAlreadySettled when the debt was already retired.
	UpdateSettlement(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOpen retrieves every order in Pending or Assigned status,
	// across all properties. Used by the reconciliation sweep.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)

	// GetAllUnsettledDelivered retrieves every order in Delivered status
	// with pickup not yet completed, across all properties. Together with
	// GetAllOpen this is the reconciliation engine's full working set.
	GetAllUnsettledDelivered(ctx context.Context) ([]*order.Order, error)

	// GetDebtSet retrieves the property's debt set: orders in Delivered
	// status whose pickup has not been completed. This is the fresh read
	// the settlement coordinator performs before trusting any projection.
	GetDebtSet(ctx context.Context, propertyID kernel.UUID) ([]*order.Order, error)

	// GetAllPickingByCourier retrieves every order currently in Picking
	// status owned by the given courier. Used by the batched depart
	// operation.
	GetAllPickingByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
