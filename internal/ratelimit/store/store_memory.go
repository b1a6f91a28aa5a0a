// Package store holds per-client token buckets.
package store

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"chapel/internal/ratelimit/models"
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per key. Each bucket refills at perMinute
// tokens per minute and holds at most perMinute tokens.
type MemoryStore struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perMinute int
	now       func() time.Time
}

// NewMemoryStore creates a store admitting perMinute requests per key per minute.
func NewMemoryStore(perMinute int) *MemoryStore {
	return &MemoryStore{
		buckets:   make(map[string]*bucket),
		perMinute: perMinute,
		now:       time.Now,
	}
}

// Allow consumes one token for key.
func (s *MemoryStore) Allow(key string) models.RateLimitResult {
	now := s.now()

	s.mu.Lock()
	b := s.bucketFor(key, now)
	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)
	s.mu.Unlock()

	refill := time.Duration(float64(time.Minute) / float64(s.perMinute))
	res := models.RateLimitResult{
		Allowed:   allowed,
		Limit:     s.perMinute,
		Remaining: max(0, int(math.Floor(tokens))),
		ResetAt:   now.Add(time.Duration((float64(s.perMinute) - tokens) * float64(refill))),
	}
	if !allowed {
		wait := time.Duration((1 - tokens) * float64(refill))
		res.RetryAfter = max(1, int(math.Ceil(wait.Seconds())))
	}
	return res
}

// Sweep drops buckets idle for longer than maxIdle. A dropped bucket is full
// again by then, so forgetting it changes nothing for the client.
func (s *MemoryStore) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, b := range s.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(s.buckets, key)
			removed++
		}
	}
	return removed
}

// Len reports how many keys are tracked.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

func (s *MemoryStore) bucketFor(key string, now time.Time) *bucket {
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(float64(s.perMinute)/60), s.perMinute)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	return b
}
