// Package session holds the authenticated-user record for the lifetime of a
// session. At most one user record exists per session id; an absent record
// means the caller is unauthenticated. The memory holder lives as long as the
// process, the Redis holder as long as the configured TTL.
package session

import (
	"context"
	"sync"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// Holder is the session slot contract. Get returns nil (not an error) for an
// unknown session id; Delete is unconditional and idempotent.
type Holder interface {
	Put(ctx context.Context, sessionID string, user domain.User) error
	Get(ctx context.Context, sessionID string) (*domain.User, error)
	Delete(ctx context.Context, sessionID string) error
}

// MemoryHolder keeps sessions in process memory.
type MemoryHolder struct {
	mu       sync.RWMutex
	sessions map[string]domain.User
}

// NewMemoryHolder returns an empty in-memory holder.
func NewMemoryHolder() *MemoryHolder {
	return &MemoryHolder{sessions: make(map[string]domain.User)}
}

// Put stores the user record under the session id.
func (h *MemoryHolder) Put(_ context.Context, sessionID string, user domain.User) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[sessionID] = user
	return nil
}

// Get returns the user for the session id, or nil when absent.
func (h *MemoryHolder) Get(_ context.Context, sessionID string) (*domain.User, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	user, ok := h.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Delete clears the session slot.
func (h *MemoryHolder) Delete(_ context.Context, sessionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, sessionID)
	return nil
}
