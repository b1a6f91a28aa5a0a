// Package middleware applies per-client write limits to HTTP routes.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"chapel/internal/platform/metrics"
	"chapel/internal/ratelimit/models"
	"chapel/pkg/platform/httputil"
	"chapel/pkg/requestcontext"
)

// RateLimiter admits or rejects one request for key.
type RateLimiter interface {
	Allow(key string) models.RateLimitResult
}

// Middleware wraps routes with a RateLimiter keyed by client IP.
type Middleware struct {
	limiter  RateLimiter
	logger   *slog.Logger
	metrics  *metrics.Metrics
	disabled bool
}

// Option configures a Middleware.
type Option func(*Middleware)

// WithDisabled turns limiting off.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// WithMetrics counts rejected requests.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = mt
	}
}

func New(limiter RateLimiter, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{limiter: limiter, logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled || m.limiter == nil {
		m.disabled = true
		logger.Info("write rate limiting disabled")
	}
	return m
}

// RateLimit limits requests per client IP; route labels metrics and logs.
func (m *Middleware) RateLimit(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.disabled {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ip := requestcontext.ClientIP(ctx)
			result := m.limiter.Allow(ip)
			addRateLimitHeaders(w, result)

			if !result.Allowed {
				m.metrics.IncrementRateLimited(route)
				m.logger.WarnContext(ctx, "write rate limit exceeded",
					"request_id", requestcontext.RequestID(ctx),
					"route", route,
					"retry_after", result.RetryAfter,
				)
				writeRateLimitExceeded(w, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func addRateLimitHeaders(w http.ResponseWriter, result models.RateLimitResult) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result models.RateLimitResult) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.RateLimitExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "Too many requests from this IP address. Please try again later.",
		RetryAfter: result.RetryAfter,
	})
}
