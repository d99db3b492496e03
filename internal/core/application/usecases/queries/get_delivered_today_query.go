package queries

import (
	"errors"
	"time"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/pkg/errs"
	"linenflow/internal/pkg/guard"
)

var (
	ErrGetDeliveredTodayQueryIsNotConstructed = errors.New(
		"GetDeliveredTodayQuery must be created via NewGetDeliveredTodayQuery constructor",
	)
)

// GetDeliveredTodayQuery retrieves the orders a courier delivered on the
// given date, including each order's pickup audit trail.
type GetDeliveredTodayQuery struct {
	courierID kernel.UUID
	date      time.Time

	guard guard.ConstructorGuard
}

// NewGetDeliveredTodayQuery creates a query for the courier's deliveries on
// the given calendar date.
func NewGetDeliveredTodayQuery(courierID kernel.UUID, date time.Time) (GetDeliveredTodayQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetDeliveredTodayQuery{}, err
	}
	if date.IsZero() {
		return GetDeliveredTodayQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetDeliveredTodayQuery{
		courierID: courierID,
		date:      date,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveredTodayQueryIsNotConstructed if validation fails.
func (q GetDeliveredTodayQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveredTodayQueryIsNotConstructed)
}

// CourierID returns the requesting courier.
func (q GetDeliveredTodayQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Date returns the calendar date being listed.
func (q GetDeliveredTodayQuery) Date() time.Time {
	return q.date
}
