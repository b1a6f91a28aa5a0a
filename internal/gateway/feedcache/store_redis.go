// Package feedcache keeps the last good podcast feed so repeat requests skip the
// upstream host until the entry expires.
package feedcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chapel/pkg/platform/sentinel"
)

// DefaultKey is where the feed body lives in redis.
const DefaultKey = "chapel:podcast:feed"

// RedisCache is a redis-backed feed cache shared across instances.
type RedisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisOption configures a RedisCache.
type RedisOption func(*RedisCache)

// WithKey overrides DefaultKey.
func WithKey(key string) RedisOption {
	return func(c *RedisCache) {
		c.key = key
	}
}

// NewRedisCache stores entries for ttl. The client lifecycle is managed by the caller.
func NewRedisCache(client *redis.Client, ttl time.Duration, opts ...RedisOption) *RedisCache {
	c := &RedisCache{client: client, key: DefaultKey, ttl: ttl}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Get returns sentinel.ErrNotFound when nothing is cached or the entry expired.
func (c *RedisCache) Get(ctx context.Context) (string, error) {
	xml, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: redis get: %w", sentinel.ErrUnavailable, err)
	}
	return xml, nil
}

// Set replaces the cached feed.
func (c *RedisCache) Set(ctx context.Context, xml string) error {
	if err := c.client.Set(ctx, c.key, xml, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}
