package feedcache

import (
	"context"
	"sync"
	"time"

	"chapel/pkg/platform/sentinel"
)

// InMemoryCache is a process-local feed cache used when redis is not configured.
type InMemoryCache struct {
	mu      sync.RWMutex
	xml     string
	expires time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemoryCache stores entries for ttl.
func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	return &InMemoryCache{ttl: ttl, now: time.Now}
}

func (c *InMemoryCache) Get(_ context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.expires.IsZero() || !c.now().Before(c.expires) {
		return "", sentinel.ErrNotFound
	}
	return c.xml, nil
}

func (c *InMemoryCache) Set(_ context.Context, xml string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.xml = xml
	c.expires = c.now().Add(c.ttl)
	return nil
}
