package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Gateway calls by operation ("fetch_faqs", ...) and outcome ("ok", "degraded", "failed")
	GatewayCalls   *prometheus.CounterVec
	GatewayLatency *prometheus.HistogramVec

	FeedCacheHits   prometheus.Counter
	FeedCacheMisses prometheus.Counter

	VitalsReceived *prometheus.CounterVec

	RateLimited *prometheus.CounterVec
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GatewayCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "chapel_gateway_calls_total",
			Help: "Outbound content gateway calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		GatewayLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chapel_gateway_call_duration_seconds",
			Help:    "Duration of outbound content gateway calls",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		FeedCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "chapel_feed_cache_hits_total",
			Help: "Podcast feed requests served from cache",
		}),
		FeedCacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "chapel_feed_cache_misses_total",
			Help: "Podcast feed requests that went upstream",
		}),
		VitalsReceived: f.NewCounterVec(prometheus.CounterOpts{
			Name: "chapel_vitals_received_total",
			Help: "Web vitals reports received by parse result",
		}, []string{"result"}),
		RateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Name: "chapel_rate_limited_total",
			Help: "Requests rejected by the write rate limiter",
		}, []string{"route"}),
	}
}

// ObserveGatewayCall records one outbound call.
func (m *Metrics) ObserveGatewayCall(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.GatewayCalls.WithLabelValues(operation, outcome).Inc()
	m.GatewayLatency.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrementFeedCache records a cache lookup.
func (m *Metrics) IncrementFeedCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.FeedCacheHits.Inc()
		return
	}
	m.FeedCacheMisses.Inc()
}

// IncrementVitals records a vitals report; result is "accepted" or "rejected".
func (m *Metrics) IncrementVitals(result string) {
	if m != nil {
		m.VitalsReceived.WithLabelValues(result).Inc()
	}
}

// IncrementRateLimited records a rejected request.
func (m *Metrics) IncrementRateLimited(route string) {
	if m != nil {
		m.RateLimited.WithLabelValues(route).Inc()
	}
}
