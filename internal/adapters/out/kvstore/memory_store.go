// Package kvstore provides the in-process key/value store backing the
// client-facing local cache port.
package kvstore

import (
	"context"
	"sync"

	"linenflow/internal/pkg/errs"
)

// MemoryStore is a process-local implementation of ports.LocalCache.
// Values are copied on both write and read so callers can never alias the
// stored byte slices.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get returns the stored value for key, or fallback when the key is absent.
func (s *MemoryStore) Get(_ context.Context, key string, fallback []byte) ([]byte, error) {
	if key == "" {
		return nil, errs.NewValueIsRequiredError("key")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return fallback, nil
	}

	return append([]byte(nil), value...), nil
}

// Set stores the value under key, overwriting any previous value.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Len returns the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
