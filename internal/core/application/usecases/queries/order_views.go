package queries

import (
	"encoding/json"
	"time"

	"linenflow/internal/core/domain/model/kernel"
)

// OrderItemView is one line item as presented in courier-facing views.
type OrderItemView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	CategoryID string `json:"category_id,omitempty"`
	Type       string `json:"type,omitempty"`
}

// startOfDay truncates a timestamp to midnight UTC, the day boundary used by
// all date-scoped courier views.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// decodeItems parses the JSONB items column into view items.
func decodeItems(raw []byte) ([]OrderItemView, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []OrderItemView
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AvailableOrderResponse is one claimable order in a courier's daily list.
type AvailableOrderResponse struct {
	ID            kernel.UUID
	PropertyID    kernel.UUID
	Address       string
	Items         []OrderItemView
	IncludePickup bool
	Urgency       string
	Status        string
	CreatedAt     time.Time

	// ScheduledCleaningTime is the optional secondary sort key joined from
	// the cleaning schedule; nil when no cleaning is scheduled.
	ScheduledCleaningTime *time.Time
}

// InTransitOrderResponse is one order currently on the road with the courier.
type InTransitOrderResponse struct {
	ID            kernel.UUID
	PropertyID    kernel.UUID
	Items         []OrderItemView
	IncludePickup bool
	Urgency       string
	DepartedAt    *time.Time
}

// DeliveredOrderResponse is one order the courier completed today, including
// the pickup audit trail.
type DeliveredOrderResponse struct {
	ID              kernel.UUID
	PropertyID      kernel.UUID
	Items           []OrderItemView
	DeliveredAt     *time.Time
	PickupCompleted bool
	PickupOutcome   string
	PickupNote      string
	PickupHasIssues bool
}
