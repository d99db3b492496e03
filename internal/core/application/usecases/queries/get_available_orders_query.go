package queries

import (
	"errors"
	"time"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/pkg/errs"
	"linenflow/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves the orders a courier may claim on a
// given date: open (Pending/Assigned) orders that are either unowned or
// already owned by that courier.
//
// Example:
//
//	query, err := NewGetAvailableOrdersQuery(courierID, time.Now())
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetAvailableOrdersQuery struct {
	courierID kernel.UUID
	date      time.Time

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the courier's claimable
// orders on the given calendar date.
func NewGetAvailableOrdersQuery(courierID kernel.UUID, date time.Time) (GetAvailableOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}
	if date.IsZero() {
		return GetAvailableOrdersQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetAvailableOrdersQuery{
		courierID: courierID,
		date:      date,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableOrdersQueryIsNotConstructed if validation fails.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// CourierID returns the requesting courier.
func (q GetAvailableOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Date returns the calendar date being listed.
func (q GetAvailableOrdersQuery) Date() time.Time {
	return q.date
}
