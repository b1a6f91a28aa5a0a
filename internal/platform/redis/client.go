// Package redis owns the optional shared redis connection. It backs the
// podcast feed cache when FEED_CACHE_TTL is set and is pinged by /api/ready.
// An empty REDIS_URL leaves the service fully functional without it.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"chapel/internal/platform/config"
)

// Client is the connected pool. The embedded client is handed to the feed cache.
type Client struct {
	*redis.Client
}

// New dials REDIS_URL with the REDIS_* pool settings and checks the connection
// before returning. It returns nil, nil when no URL is configured.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := options(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Client{Client: client}, nil
}

// options applies the pool settings on top of the URL. Zero values keep the
// go-redis defaults.
func options(cfg config.RedisConfig) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// Health is the readiness ping.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

// Close releases the pool. Safe on a nil Client.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.Client.Close()
}
