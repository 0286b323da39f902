// Package cache is a thin Redis-backed JSON cache used for the computed
// recommendation pages. The cache is optional: when REDIS_ADDR is not set the
// constructor returns nil, and all methods are nil-receiver safe so callers
// never have to branch on availability.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFromEnv builds a cache from REDIS_ADDR, or returns nil when unset.
func NewFromEnv() *Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	return &Cache{client: client, ttl: defaultTTL}
}

// GetJSON loads the cached value into out. A miss (or a disabled cache)
// returns false with no error; decode failures are treated as misses since
// the entry will simply be recomputed.
func (c *Cache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if c == nil {
		return false, nil
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}

	return true, nil
}

// SetJSON stores the value under key with the cache TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops a single key. Used by write paths that want fresher
// results than TTL expiry provides.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
