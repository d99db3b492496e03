package queries

import (
	"context"
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/services"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"
)

var (
	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("no order found")
)

// GetPickupProjectionQueryHandler recomputes the pickup projection for an
// order's property from fresh repository reads and the domain reconciler.
//
// Unlike the other query handlers this one goes through the repository
// rather than raw SQL: the projection is a domain computation over
// aggregates, not a row-shaping concern.
//
// An order with includePickup=false always yields an empty projection, even
// when the property has outstanding debt; that debt stays put for the next
// eligible order.
type GetPickupProjectionQueryHandler struct {
	orderRepo  ports.OrderRepository
	reconciler *services.PickupReconciler
}

// NewGetPickupProjectionQueryHandler creates a handler for projection
// refresh queries. The repository must be a direct (non-transactional)
// instance.
func NewGetPickupProjectionQueryHandler(
	orderRepo ports.OrderRepository,
	reconciler *services.PickupReconciler,
) GetPickupProjectionQueryHandler {
	return GetPickupProjectionQueryHandler{
		orderRepo:  orderRepo,
		reconciler: reconciler,
	}
}

// Handle executes the refresh.
// Returns ErrOrderNotFound when the order does not exist.
func (h GetPickupProjectionQueryHandler) Handle(
	ctx context.Context,
	query GetPickupProjectionQuery,
) (services.PickupProjection, error) {
	if err := query.Validate(); err != nil {
		return services.PickupProjection{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.PickupProjection{}, ErrOrderNotFound
	}
	if err != nil {
		return services.PickupProjection{}, err
	}

	if !aggregate.IncludePickup() {
		return services.PickupProjection{
			Items:      []services.PickupItem{},
			FromOrders: []kernel.UUID{},
		}, nil
	}

	debtSet, err := h.orderRepo.GetDebtSet(ctx, aggregate.PropertyID())
	if err != nil {
		return services.PickupProjection{}, err
	}

	return h.reconciler.Merge(h.reconciler.DebtSet(debtSet, aggregate.PropertyID())), nil
}
