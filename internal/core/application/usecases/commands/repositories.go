// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"log/slog"

	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/metrics"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	//
	// Handlers that issue deliberately independent writes (batched depart,
	// settlement scatter) create one unit of work per write through this
	// factory rather than spanning them with a single transaction.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// publishOrderChanged pushes the order's new state onto the change feed after
// a successful commit. Publishing is best effort: failures are logged, never
// returned, because the periodic reconciliation sweep covers missed ticks.
func publishOrderChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	aggregate *order.Order,
) {
	if publisher == nil {
		return
	}

	event := ports.OrderChangedEvent{
		OrderID:    aggregate.ID(),
		PropertyID: aggregate.PropertyID(),
		Status:     aggregate.Status(),
		OccurredAt: nowUTC(),
	}

	if err := publisher.PublishOrderChanged(ctx, event); err != nil {
		metrics.OrderEventsPublished.WithLabelValues(metrics.ResultFailed).Inc()
		if logger != nil {
			logger.WarnContext(ctx, "Failed to publish order changed event",
				"order_id", aggregate.ID().String(),
				"status", aggregate.Status().String(),
				"error", err,
			)
		}
		return
	}

	metrics.OrderEventsPublished.WithLabelValues(metrics.ResultOK).Inc()
}
