package ports

import (
	"context"
	"time"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
)

// OrderChangedEvent is the change-feed record published after every
// successful lifecycle write. Observers treat each event as a tick: the
// payload says what moved, but consumers recompute projections from the
// repository rather than trusting the event body.
type OrderChangedEvent struct {
	OrderID    kernel.UUID
	PropertyID kernel.UUID
	Status     order.Status
	OccurredAt time.Time
}

// OrderEventPublisher pushes order-changed events onto the shared change
// feed. Publishing is best effort: a failed publish is logged by the caller
// and never fails the lifecycle write it follows, because the periodic
// reconciliation sweep covers missed ticks.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
