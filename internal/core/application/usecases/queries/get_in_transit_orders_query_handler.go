package queries

import (
	"context"
	"database/sql"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInTransitOrdersQueryHandler retrieves a courier's in-flight orders from
// the database, ordered by departure time.
type GetInTransitOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetInTransitOrdersQueryHandler creates a handler for in-transit queries.
// Requires a GORM database connection for query execution.
func NewGetInTransitOrdersQueryHandler(db *gorm.DB) GetInTransitOrdersQueryHandler {
	return GetInTransitOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetInTransitOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetInTransitOrdersQuery,
) ([]InTransitOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]InTransitOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			property_id,
			items,
			include_pickup,
			urgency,
			departed_at
		FROM orders
		WHERE status = ?
		  AND courier_id = ?
		ORDER BY departed_at, id
	`, order.InTransit, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			propertyID    uuid.UUID
			rawItems      []byte
			includePickup bool
			urgency       int
			departedAt    sql.NullTime
		)

		if err = rows.Scan(&id, &propertyID, &rawItems, &includePickup, &urgency, &departedAt); err != nil {
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

		resp := InTransitOrderResponse{
			ID:            orderID,
			PropertyID:    propID,
			Items:         items,
			IncludePickup: includePickup,
			Urgency:       order.Urgency(urgency).String(),
		}
		if departedAt.Valid {
			t := departedAt.Time
			resp.DepartedAt = &t
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
