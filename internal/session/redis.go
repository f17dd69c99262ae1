package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

const keyPrefix = "ep_session:"

// RedisHolder keeps sessions in Redis so they survive process restarts and
// can be shared across instances. A zero TTL means no expiry beyond explicit
// logout.
type RedisHolder struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisHolder wraps the given client.
func NewRedisHolder(client *redis.Client, ttl time.Duration) *RedisHolder {
	return &RedisHolder{client: client, ttl: ttl}
}

// Put stores the user record under the session key.
func (h *RedisHolder) Put(ctx context.Context, sessionID string, user domain.User) error {
	blob, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return h.client.Set(ctx, keyPrefix+sessionID, blob, h.ttl).Err()
}

// Get returns the user for the session id, or nil when absent or expired.
func (h *RedisHolder) Get(ctx context.Context, sessionID string) (*domain.User, error) {
	blob, err := h.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(blob, &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &user, nil
}

// Delete clears the session key.
func (h *RedisHolder) Delete(ctx context.Context, sessionID string) error {
	return h.client.Del(ctx, keyPrefix+sessionID).Err()
}
