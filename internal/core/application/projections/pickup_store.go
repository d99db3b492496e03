// Package projections holds the live, in-memory read model produced by the
// pickup reconciliation sweep: one derived pickup projection per eligible
// open order.
//
// The store is deliberately separate from the persistent order record.
// Projections carry no identity, are overwritten wholesale on every
// reconciliation tick, and must never be trusted for settlement: the
// settlement coordinator recomputes from fresh repository reads instead.
package projections

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/services"
	"linenflow/internal/core/ports"
)

// cacheKeyPrefix namespaces projection entries in the shared local cache.
const cacheKeyPrefix = "pickup_projection:"

// cachedProjection is the JSON shape written through to the local cache so
// clients can render instantly before the live feed arrives.
type cachedProjection struct {
	Items      []cachedItem `json:"items"`
	FromOrders []string     `json:"from_orders"`
}

type cachedItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Store keeps the latest pickup projection per order ID.
// Safe for concurrent use: the reconciliation sweep replaces the whole map
// while query paths read individual entries.
type Store struct {
	mu      sync.RWMutex
	byOrder map[kernel.UUID]services.PickupProjection

	localCache ports.LocalCache
	logger     *slog.Logger
}

// NewStore creates an empty projection store. localCache may be nil, in
// which case write-through is skipped.
func NewStore(localCache ports.LocalCache, logger *slog.Logger) *Store {
	return &Store{
		byOrder:    make(map[kernel.UUID]services.PickupProjection),
		localCache: localCache,
		logger:     logger,
	}
}

// Replace swaps in the full projection set computed by a reconciliation run.
// Orders absent from the new set lose their projection: an order that left
// the open state, or whose property's debt was settled, simply shows
// nothing to retrieve.
func (s *Store) Replace(ctx context.Context, next map[kernel.UUID]services.PickupProjection) {
	copied := make(map[kernel.UUID]services.PickupProjection, len(next))
	for id, projection := range next {
		copied[id] = projection
	}

	s.mu.Lock()
	s.byOrder = copied
	s.mu.Unlock()

	s.writeThrough(ctx, copied)
}

// Get returns the latest projection for the order and whether one exists.
// Orders without a projection (not open, or includePickup disabled) report
// false.
func (s *Store) Get(orderID kernel.UUID) (services.PickupProjection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projection, ok := s.byOrder[orderID]
	return projection, ok
}

// Len returns the number of orders currently holding a projection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byOrder)
}

// writeThrough persists each projection to the local cache for
// instant-render clients. Failures are logged and ignored: the cache is a
// convenience copy, never a source of truth.
func (s *Store) writeThrough(ctx context.Context, projections map[kernel.UUID]services.PickupProjection) {
	if s.localCache == nil {
		return
	}

	for orderID, projection := range projections {
		payload, err := json.Marshal(toCached(projection))
		if err != nil {
			s.logger.WarnContext(ctx, "Failed to encode projection for cache",
				"order_id", orderID.String(), "error", err)
			continue
		}
		if err := s.localCache.Set(ctx, cacheKeyPrefix+orderID.String(), payload); err != nil {
			s.logger.WarnContext(ctx, "Failed to write projection to cache",
				"order_id", orderID.String(), "error", err)
		}
	}
}

func toCached(projection services.PickupProjection) cachedProjection {
	var cached cachedProjection
	cached.Items = make([]cachedItem, 0, len(projection.Items))
	for _, item := range projection.Items {
		cached.Items = append(cached.Items, cachedItem{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	cached.FromOrders = make([]string, 0, len(projection.FromOrders))
	for _, id := range projection.FromOrders {
		cached.FromOrders = append(cached.FromOrders, id.String())
	}

	return cached
}
