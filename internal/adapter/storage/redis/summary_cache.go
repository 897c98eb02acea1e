package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SummaryCache implements ports.SummaryCache for the vendor read views
// (pending-commission summaries and wallet balances). Best-effort only:
// callers fall back to the store when it misses or fails.
type SummaryCache struct {
	client *goredis.Client
	prefix string
}

// NewSummaryCache creates a new Redis-backed summary cache.
func NewSummaryCache(client *goredis.Client) *SummaryCache {
	return &SummaryCache{
		client: client,
		prefix: "settlement:",
	}
}

// Get retrieves a cached view. Returns nil, nil on a miss.
func (c *SummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis summary get: %w", err)
	}
	return val, nil
}

// Set stores a view with a TTL.
func (c *SummaryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis summary set: %w", err)
	}
	return nil
}

// Delete invalidates one or more views after a mutation.
func (c *SummaryCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.prefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis summary delete: %w", err)
	}
	return nil
}
