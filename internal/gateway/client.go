// Package gateway issues the site's outbound content calls: the FAQ store, the
// ministries listing and the podcast RSS feed. Each operation performs exactly one
// request and normalizes the answer into a Result. Nothing here retries, and no
// timeout is applied beyond the caller's context and the configured http.Client.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"chapel/internal/platform/config"
	"chapel/internal/platform/metrics"
	"chapel/pkg/platform/sentinel"
	"chapel/pkg/requestcontext"
)

const tracerName = "chapel/internal/gateway"

//go:generate mockgen -source=client.go -destination=mocks/feedcache_mock.go -package=mocks FeedCache

// FeedCache stores the last good podcast feed body.
// Get returns sentinel.ErrNotFound on a miss.
type FeedCache interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, xml string) error
}

// Endpoints are the absolute URLs the client talks to.
type Endpoints struct {
	FAQList     string
	FAQStore    string
	ContentList string
	PodcastRSS  string
}

// EndpointsFromConfig joins the configured base URL and paths.
func EndpointsFromConfig(cfg config.GatewayConfig) Endpoints {
	return Endpoints{
		FAQList:     cfg.BaseURL + cfg.FAQListPath,
		FAQStore:    cfg.BaseURL + cfg.FAQStorePath,
		ContentList: cfg.BaseURL + cfg.ContentListPath,
		PodcastRSS:  cfg.PodcastRSSURL,
	}
}

// Client is the content gateway.
type Client struct {
	endpoints Endpoints
	http      *http.Client
	logger    *slog.Logger
	metrics   *metrics.Metrics
	feedCache FeedCache
	tracer    trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the outbound HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics records call counts and latencies.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithFeedCache serves the podcast feed from cache when warm.
func WithFeedCache(fc FeedCache) Option {
	return func(c *Client) {
		c.feedCache = fc
	}
}

// New constructs a gateway client.
func New(endpoints Endpoints, opts ...Option) *Client {
	c := &Client{
		endpoints: endpoints,
		http:      http.DefaultClient,
		logger:    slog.New(slog.DiscardHandler),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient builds the outbound client. A zero timeout means none.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// upstreamResponse is a fully read upstream answer.
type upstreamResponse struct {
	StatusCode int
	Body       []byte
}

func (u upstreamResponse) success() bool {
	return u.StatusCode >= 200 && u.StatusCode < 300
}

// send performs one request and reads the whole body. Transport and read errors are
// wrapped with sentinel.ErrUnavailable.
func (c *Client) send(ctx context.Context, method, url string, body []byte, header http.Header) (upstreamResponse, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return upstreamResponse{}, fmt.Errorf("gateway new request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if reqID := requestcontext.RequestID(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return upstreamResponse{}, fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return upstreamResponse{}, fmt.Errorf("%w: read body: %w", sentinel.ErrUnavailable, err)
	}
	return upstreamResponse{StatusCode: resp.StatusCode, Body: raw}, nil
}

func statusError(code int) error {
	return fmt.Errorf("%w: upstream status %d", sentinel.ErrUnavailable, code)
}

// startOp opens a span and returns a closer that records the outcome.
func (c *Client) startOp(ctx context.Context, op, url string) (context.Context, func(Outcome, error)) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "gateway."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gateway.operation", op),
			attribute.String("url.full", url),
		),
	)
	return ctx, func(outcome Outcome, cause error) {
		span.SetAttributes(attribute.String("gateway.outcome", outcome.String()))
		switch outcome {
		case OutcomeFailed:
			span.RecordError(cause)
			span.SetStatus(codes.Error, cause.Error())
			c.logger.WarnContext(ctx, "gateway call failed",
				"request_id", requestcontext.RequestID(ctx),
				"operation", op,
				"error", cause,
			)
		case OutcomeDegraded:
			c.logger.WarnContext(ctx, "gateway content unusable, degrading to empty",
				"request_id", requestcontext.RequestID(ctx),
				"operation", op,
				"reason", cause,
			)
		}
		span.End()
		c.metrics.ObserveGatewayCall(op, outcome.String(), time.Since(start))
	}
}
