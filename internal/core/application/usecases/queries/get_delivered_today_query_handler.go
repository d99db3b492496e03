package queries

import (
	"context"
	"database/sql"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveredTodayQueryHandler retrieves a courier's completed deliveries
// for a date, newest first, with the pickup audit fields included so
// dispatch can review flagged pickups.
type GetDeliveredTodayQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveredTodayQueryHandler creates a handler for delivered-today queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveredTodayQueryHandler(db *gorm.DB) GetDeliveredTodayQueryHandler {
	return GetDeliveredTodayQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDeliveredTodayQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveredTodayQuery,
) ([]DeliveredOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]DeliveredOrderResponse, 0)

	dayStart := startOfDay(query.Date())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			property_id,
			items,
			delivered_at,
			pickup_completed,
			pickup_outcome,
			pickup_note,
			pickup_has_issues
		FROM orders
		WHERE status = ?
		  AND courier_id = ?
		  AND delivered_at >= ? AND delivered_at < ?
		ORDER BY delivered_at DESC
	`, order.Delivered, query.CourierID().Bytes(), dayStart, dayStart.AddDate(0, 0, 1)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              uuid.UUID
			propertyID      uuid.UUID
			rawItems        []byte
			deliveredAt     sql.NullTime
			pickupCompleted bool
			pickupOutcome   int
			pickupNote      string
			pickupHasIssues bool
		)

		if err = rows.Scan(&id, &propertyID, &rawItems, &deliveredAt,
			&pickupCompleted, &pickupOutcome, &pickupNote, &pickupHasIssues); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		propID, propErr := kernel.UUIDFromBytes(propertyID[:])
		if propErr != nil {
			return nil, propErr
		}
		items, itemsErr := decodeItems(rawItems)
		if itemsErr != nil {
			return nil, itemsErr
		}

		resp := DeliveredOrderResponse{
			ID:              orderID,
			PropertyID:      propID,
			Items:           items,
			PickupCompleted: pickupCompleted,
			PickupOutcome:   order.PickupOutcome(pickupOutcome).String(),
			PickupNote:      pickupNote,
			PickupHasIssues: pickupHasIssues,
		}
		if deliveredAt.Valid {
			t := deliveredAt.Time
			resp.DeliveredAt = &t
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
