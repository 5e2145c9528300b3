// internal/infrastructure/storage/memory/store.go
package memory

import (
	"context"
	"sync"
)

// Store is an in-memory implementation of the cart persistence port. It
// backs tests and REDIS-less development; semantics mirror the Redis blob
// store minus expiry.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		blobs: make(map[string][]byte),
	}
}

// Load retrieves the blob stored under key
func (s *Store) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Save stores the blob under key
func (s *Store) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key] = stored
	return nil
}

// Delete removes the blob stored under key
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
