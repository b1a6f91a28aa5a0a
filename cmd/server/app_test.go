package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chapel/internal/platform/config"
	"chapel/pkg/testutil"
)

func TestBuildAppWithoutRedis(t *testing.T) {
	cfg := config.Server{
		Environment:        config.EnvTest,
		Version:            "1.2.3",
		SiteURL:            "https://chapel.example.org",
		WriteRatePerMinute: 5,
		Gateway: config.GatewayConfig{
			BaseURL:      "http://127.0.0.1:1",
			FeedCacheTTL: time.Minute,
		},
	}

	a, err := buildApp(context.Background(), cfg, slog.New(slog.DiscardHandler), time.Now())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.close() })

	assert.Nil(t, a.redis)
	assert.NotNil(t, a.limits)

	rr := testutil.DoRequest(a.handler, testutil.NewJSONRequest(t, http.MethodGet, "/api/health", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "version", "1.2.3")

	rr = testutil.DoRequest(a.handler, testutil.NewJSONRequest(t, http.MethodGet, "/api/ready", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.DoRequest(a.handler, testutil.NewJSONRequest(t, http.MethodPost, "/api/faqs", map[string]string{"question": "q"}))
	testutil.AssertStatus(t, rr, http.StatusForbidden)
}

func TestBuildAppRejectsBadRedisURL(t *testing.T) {
	cfg := config.Server{Redis: config.RedisConfig{URL: "ftp://nope"}}
	_, err := buildApp(context.Background(), cfg, slog.New(slog.DiscardHandler), time.Now())
	assert.Error(t, err)
}

func TestSweepLimitsStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := &app{}
	assert.NoError(t, a.sweepLimits(ctx, slog.New(slog.DiscardHandler)))
}

func TestDefaultConfigReportsEveryPodcastFailure(t *testing.T) {
	var calls atomic.Int32
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			_, _ = io.WriteString(w, "<rss/>")
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(feed.Close)

	t.Setenv("APP_ENV", "test")
	t.Setenv("REDIS_URL", "")
	t.Setenv("FEED_CACHE_TTL", "")
	t.Setenv("PODCAST_RSS_URL", feed.URL)
	cfg := config.FromEnv()

	a, err := buildApp(context.Background(), cfg, slog.New(slog.DiscardHandler), time.Now())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.close() })

	rr := testutil.DoRequest(a.handler, testutil.NewJSONRequest(t, http.MethodGet, "/api/podcast-rss", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "xml", "<rss/>")

	rr = testutil.DoRequest(a.handler, testutil.NewJSONRequest(t, http.MethodGet, "/api/podcast-rss", nil))
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	body := testutil.DecodeResponse[map[string]any](t, rr)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "500")
	assert.Equal(t, int32(2), calls.Load(), "each request goes upstream")
}

func TestFeedCacheTTLServesRepeatRequestsFromMemory(t *testing.T) {
	var calls atomic.Int32
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, "<rss/>")
	}))
	t.Cleanup(feed.Close)

	cfg := config.Server{
		Environment: config.EnvTest,
		Gateway:     config.GatewayConfig{PodcastRSSURL: feed.URL, FeedCacheTTL: time.Minute},
	}
	a, err := buildApp(context.Background(), cfg, slog.New(slog.DiscardHandler), time.Now())
	require.NoError(t, err)

	for range 3 {
		rr := testutil.DoRequest(a.handler, testutil.NewJSONRequest(t, http.MethodGet, "/api/podcast-rss", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
	}
	assert.Equal(t, int32(1), calls.Load())
}
