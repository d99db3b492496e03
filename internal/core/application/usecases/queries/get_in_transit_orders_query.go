package queries

import (
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/pkg/guard"
)

var (
	ErrGetInTransitOrdersQueryIsNotConstructed = errors.New(
		"GetInTransitOrdersQuery must be created via NewGetInTransitOrdersQuery constructor",
	)
)

// GetInTransitOrdersQuery retrieves the orders a courier is currently
// driving: status InTransit, owned by that courier.
type GetInTransitOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInTransitOrdersQuery creates a query for the courier's in-flight orders.
func NewGetInTransitOrdersQuery(courierID kernel.UUID) (GetInTransitOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetInTransitOrdersQuery{}, err
	}

	return GetInTransitOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInTransitOrdersQueryIsNotConstructed if validation fails.
func (q GetInTransitOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetInTransitOrdersQueryIsNotConstructed)
}

// CourierID returns the requesting courier.
func (q GetInTransitOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}
