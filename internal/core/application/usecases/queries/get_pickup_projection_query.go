package queries

import (
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/pkg/guard"
)

var (
	ErrGetPickupProjectionQueryIsNotConstructed = errors.New(
		"GetPickupProjectionQuery must be created via NewGetPickupProjectionQuery constructor",
	)
)

// GetPickupProjectionQuery is the refresh/recalculate operation: given an
// order, recompute the outstanding dirty-linen projection for its property
// from the current order set. Used both for UI preview and, critically, to
// verify freshness before a settlement commit.
type GetPickupProjectionQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickupProjectionQuery creates a projection refresh query for the order.
func NewGetPickupProjectionQuery(orderID kernel.UUID) (GetPickupProjectionQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPickupProjectionQuery{}, err
	}

	return GetPickupProjectionQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPickupProjectionQueryIsNotConstructed if validation fails.
func (q GetPickupProjectionQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupProjectionQueryIsNotConstructed)
}

// OrderID returns the order whose property's projection is recomputed.
func (q GetPickupProjectionQuery) OrderID() kernel.UUID {
	return q.orderID
}
