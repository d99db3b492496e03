package ports

import (
	"context"
	"time"

	"linenflow/internal/core/domain/model/kernel"
)

// External collaborators consumed by the core. These systems are out of
// scope here; the core depends only on the narrow contracts below.

// PropertyInfo is the read-only directory record for a rental property.
type PropertyInfo struct {
	ID         kernel.UUID
	Address    string
	AccessInfo string
}

// PropertyDirectory resolves property identifiers to address and access
// information. Read-only; never affects state-machine or reconciliation
// logic.
type PropertyDirectory interface {
	Get(ctx context.Context, propertyID kernel.UUID) (PropertyInfo, error)
}

// CleaningSlot is a scheduled cleaning at a property, joined into courier
// views only to compute a secondary sort key.
type CleaningSlot struct {
	ID            kernel.UUID
	PropertyID    kernel.UUID
	ScheduledTime time.Time
	Status        string
}

// CleaningSchedule exposes the optional cleaning-schedule join. A nil slot
// result means no cleaning is scheduled; callers fall back to creation-time
// ordering.
type CleaningSchedule interface {
	NextScheduled(ctx context.Context, propertyID kernel.UUID, date time.Time) (*CleaningSlot, error)
}

// LocalCache is the durable key/value store clients use to render instantly
// before the live feed arrives. The core treats it as pure storage with
// get/set semantics and never as a source of truth for settlement.
type LocalCache interface {
	// Get returns the stored value for key, or fallback when the key is absent.
	Get(ctx context.Context, key string, fallback []byte) ([]byte, error)

	// Set stores the value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
