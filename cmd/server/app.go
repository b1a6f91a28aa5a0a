package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	contenthandler "chapel/internal/content/handler"
	"chapel/internal/gateway"
	"chapel/internal/gateway/feedcache"
	"chapel/internal/health"
	healthhandler "chapel/internal/health/handler"
	"chapel/internal/platform/config"
	"chapel/internal/platform/metrics"
	chapelredis "chapel/internal/platform/redis"
	ratelimitmw "chapel/internal/ratelimit/middleware"
	"chapel/internal/ratelimit/store"
	"chapel/internal/robots"
	httptransport "chapel/internal/transport/http"
	uploadhandler "chapel/internal/upload/handler"
	vitalshandler "chapel/internal/vitals/handler"
	"chapel/pkg/platform/middleware/admin"
)

// app holds everything main starts and stops.
type app struct {
	handler http.Handler
	redis   *chapelredis.Client
	limits  *store.MemoryStore
}

// buildApp wires config into handlers. Redis is optional: without REDIS_URL the
// feed cache falls back to process memory and readiness skips the cache check.
func buildApp(ctx context.Context, cfg config.Server, logger *slog.Logger, startedAt time.Time) (*app, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	rc, err := chapelredis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	gwOpts := []gateway.Option{
		gateway.WithHTTPClient(gateway.NewHTTPClient(cfg.Gateway.Timeout)),
		gateway.WithLogger(logger),
		gateway.WithMetrics(m),
	}
	switch {
	case cfg.Gateway.FeedCacheTTL <= 0:
		// caching disabled
	case rc != nil:
		gwOpts = append(gwOpts, gateway.WithFeedCache(feedcache.NewRedisCache(rc.Client, cfg.Gateway.FeedCacheTTL)))
	default:
		gwOpts = append(gwOpts, gateway.WithFeedCache(feedcache.NewInMemoryCache(cfg.Gateway.FeedCacheTTL)))
	}
	gw := gateway.New(gateway.EndpointsFromConfig(cfg.Gateway), gwOpts...)

	a := &app{redis: rc}
	limiterOpts := []ratelimitmw.Option{ratelimitmw.WithMetrics(m)}
	var limiter ratelimitmw.RateLimiter
	if cfg.WriteRatePerMinute > 0 {
		a.limits = store.NewMemoryStore(cfg.WriteRatePerMinute)
		limiter = a.limits
	} else {
		limiterOpts = append(limiterOpts, ratelimitmw.WithDisabled(true))
	}
	rateLimit := ratelimitmw.New(limiter, logger, limiterOpts...)

	var cachePing healthhandler.Pinger
	if rc != nil {
		cachePing = rc
	}
	reporter := health.NewReporter(startedAt, cfg.Version, cfg.Environment, nil)

	a.handler = httptransport.NewRouter(logger, reg, cfg.TrustedProxyHops,
		healthhandler.New(reporter, cachePing, logger),
		vitalshandler.New(cfg.Environment, logger, m),
		contenthandler.New(gw, logger,
			admin.RequireAdminToken(cfg.AdminToken, logger),
			rateLimit.RateLimit("faqs"),
		),
		uploadhandler.New(logger),
		robots.New(cfg.SiteURL),
	)
	return a, nil
}

// sweepLimits drops idle rate limit buckets until ctx ends.
func (a *app) sweepLimits(ctx context.Context, logger *slog.Logger) error {
	if a.limits == nil {
		return nil
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := a.limits.Sweep(10 * time.Minute); n > 0 {
				logger.Debug("swept idle rate limit buckets", "removed", n)
			}
		}
	}
}

func (a *app) close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}
