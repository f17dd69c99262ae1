// Package persistence provides the durable key-value collection store and
// the client wrappers around Postgres and Redis. Collections are opaque JSON
// blobs saved as a unit: every save is a full overwrite, last write wins.
package persistence

import (
	"context"
	"sync"
)

// Collection keys. The ep_ prefix is the application namespace carried over
// from the original storage layout.
const (
	UsersCollection    = "ep_users"
	ProjectsCollection = "ep_projects"
)

// Store is the contract for collection persistence. Load returns nil (not an
// error) for a collection that has never been written. Save overwrites the
// stored value wholesale; there is no merge or concurrency check.
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
}

// MemoryStore keeps collections in process memory. Used in tests and as the
// zero-dependency default backend.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load returns a copy of the stored blob, or nil when absent.
func (s *MemoryStore) Load(_ context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.data[collection]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Save overwrites the stored blob.
func (s *MemoryStore) Save(_ context.Context, collection string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = stored
	return nil
}
