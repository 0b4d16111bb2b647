package inflight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/davidbz/lawra/internal/observability"
)

const keyPrefix = "inflight:"

// releaseScript deletes the key only if it still holds the caller's lease,
// so an expired-then-reacquired key is not released by the old holder.
//
//nolint:gochecknoglobals // compiled script is immutable
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a guard shared by every replica using the same Redis. The lease
// is stored as the key's value; nothing is kept in process.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed guard. ttl bounds how long a crashed
// holder can block a conversation.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

// Acquire sets the conversation key with NX and the configured TTL.
func (r *Redis) Acquire(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("key cannot be empty")
	}

	lease := uuid.New().String()

	acquired, err := r.client.SetNX(ctx, keyPrefix+key, lease, r.ttl).Result()
	if err != nil {
		observability.FromContext(ctx).Error("inflight acquire failed",
			observability.String("key", key),
			observability.Error(err))
		return "", false, fmt.Errorf("failed to acquire %s: %w", key, err)
	}

	if !acquired {
		return "", false, nil
	}

	return lease, true, nil
}

// Release deletes the key if lease still holds it.
func (r *Redis) Release(ctx context.Context, key, lease string) error {
	if lease == "" {
		return nil
	}

	deleted, err := releaseScript.Run(ctx, r.client, []string{keyPrefix + key}, lease).Int()
	if err != nil {
		observability.FromContext(ctx).Warn("inflight release failed",
			observability.String("key", key),
			observability.Error(err))
		return fmt.Errorf("failed to release %s: %w", key, err)
	}

	if deleted == 0 {
		observability.FromContext(ctx).Warn("inflight lease expired before release",
			observability.String("key", key))
	}

	return nil
}
