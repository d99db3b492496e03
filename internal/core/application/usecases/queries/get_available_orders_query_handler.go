package queries

import (
	"context"
	"database/sql"
	"log/slog"
	"sort"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler lists the orders a courier may claim today.
//
// The SQL filter is the eligibility predicate: open status AND (no owner OR
// owned by the requesting courier). Results come back urgency-first, then by
// the optional cleaning-schedule time for the property, then by creation
// time. Property addresses are joined from the read-only directory; a
// directory failure degrades to an empty address rather than failing the
// whole listing.
type GetAvailableOrdersQueryHandler struct {
	db        *gorm.DB
	directory ports.PropertyDirectory
	schedule  ports.CleaningSchedule
	logger    *slog.Logger
}

// NewGetAvailableOrdersQueryHandler creates a handler for available-order
// queries. The directory and schedule collaborators may be nil, in which
// case addresses stay empty and the secondary sort key falls back to
// creation time.
func NewGetAvailableOrdersQueryHandler(
	db *gorm.DB,
	directory ports.PropertyDirectory,
	schedule ports.CleaningSchedule,
	logger *slog.Logger,
) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{
		db:        db,
		directory: directory,
		schedule:  schedule,
		logger:    logger,
	}
}

// Handle executes the query.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]AvailableOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]AvailableOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			property_id,
			items,
			include_pickup,
			urgency,
			status,
			created_at
		FROM orders
		WHERE status IN (?, ?)
		  AND (courier_id IS NULL OR courier_id = ?)
		  AND created_at >= ? AND created_at < ?
		ORDER BY urgency DESC, created_at
	`,
		order.Pending, order.Assigned,
		query.CourierID().Bytes(),
		startOfDay(query.Date()), startOfDay(query.Date()).AddDate(0, 0, 1),
	).Rows()
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
			status        int
			createdAt     sql.NullTime
		)

		if err = rows.Scan(&id, &propertyID, &rawItems, &includePickup, &urgency, &status, &createdAt); err != nil {
			return nil, err
		}

		resp, buildErr := h.buildResponse(ctx, id, propertyID, rawItems, includePickup, urgency, status, createdAt)
		if buildErr != nil {
			return nil, buildErr
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sortAvailableOrders(responses)
	return responses, nil
}

func (h GetAvailableOrdersQueryHandler) buildResponse(
	ctx context.Context,
	id uuid.UUID,
	propertyID uuid.UUID,
	rawItems []byte,
	includePickup bool,
	urgency int,
	status int,
	createdAt sql.NullTime,
) (AvailableOrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AvailableOrderResponse{}, err
	}

	propID, err := kernel.UUIDFromBytes(propertyID[:])
	if err != nil {
		return AvailableOrderResponse{}, err
	}

	items, err := decodeItems(rawItems)
	if err != nil {
		return AvailableOrderResponse{}, err
	}

	resp := AvailableOrderResponse{
		ID:            orderID,
		PropertyID:    propID,
		Items:         items,
		IncludePickup: includePickup,
		Urgency:       order.Urgency(urgency).String(),
		Status:        order.Status(status).String(),
		CreatedAt:     createdAt.Time,
	}

	if h.directory != nil {
		info, dirErr := h.directory.Get(ctx, propID)
		if dirErr != nil {
			h.logger.WarnContext(ctx, "Property directory lookup failed",
				"property_id", propID.String(), "error", dirErr)
		} else {
			resp.Address = info.Address
		}
	}

	if h.schedule != nil {
		slot, schedErr := h.schedule.NextScheduled(ctx, propID, resp.CreatedAt)
		if schedErr != nil {
			h.logger.WarnContext(ctx, "Cleaning schedule lookup failed",
				"property_id", propID.String(), "error", schedErr)
		} else if slot != nil {
			t := slot.ScheduledTime
			resp.ScheduledCleaningTime = &t
		}
	}

	return resp, nil
}

// sortAvailableOrders orders the list for the courier: urgent orders first,
// then by the cleaning-schedule time where present (falling back to creation
// time), then by creation time as the final tiebreaker.
func sortAvailableOrders(responses []AvailableOrderResponse) {
	secondary := func(r AvailableOrderResponse) int64 {
		if r.ScheduledCleaningTime != nil {
			return r.ScheduledCleaningTime.Unix()
		}
		return r.CreatedAt.Unix()
	}

	sort.SliceStable(responses, func(i, j int) bool {
		iUrgent := responses[i].Urgency == order.UrgencyUrgent.String()
		jUrgent := responses[j].Urgency == order.UrgencyUrgent.String()
		if iUrgent != jUrgent {
			return iUrgent
		}
		if secondary(responses[i]) != secondary(responses[j]) {
			return secondary(responses[i]) < secondary(responses[j])
		}
		return responses[i].CreatedAt.Before(responses[j].CreatedAt)
	})
}
