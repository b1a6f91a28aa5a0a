package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chapel/internal/gateway"
	"chapel/internal/gateway/mocks"
	"chapel/internal/platform/metrics"
	"chapel/pkg/platform/sentinel"
)

func TestFetchPodcastFeedCache(t *testing.T) {
	const feed = `<rss version="2.0"><channel><title>Midweek</title></channel></rss>`

	t.Run("warm cache skips upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockFeedCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(feed, nil)

		m := metrics.New(prometheus.NewRegistry())
		u := &upstream{status: http.StatusOK, body: "stale"}
		res := newClient(t, u, gateway.WithFeedCache(cache), gateway.WithMetrics(m)).FetchPodcastFeed(context.Background())

		require.Equal(t, gateway.OutcomeOK, res.Outcome)
		assert.Equal(t, feed, res.Data)
		assert.Zero(t, u.calls)
		assert.Equal(t, 1.0, promtest.ToFloat64(m.FeedCacheHits))
	})

	t.Run("miss fetches and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockFeedCache(ctrl)
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any()).Return("", sentinel.ErrNotFound),
			cache.EXPECT().Set(gomock.Any(), feed).Return(nil),
		)

		m := metrics.New(prometheus.NewRegistry())
		u := &upstream{status: http.StatusOK, body: feed}
		res := newClient(t, u, gateway.WithFeedCache(cache), gateway.WithMetrics(m)).FetchPodcastFeed(context.Background())

		require.Equal(t, gateway.OutcomeOK, res.Outcome)
		assert.Equal(t, feed, res.Data)
		assert.Equal(t, 1, u.calls)
		assert.Equal(t, 1.0, promtest.ToFloat64(m.FeedCacheMisses))
	})

	t.Run("upstream failure is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockFeedCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return("", sentinel.ErrNotFound)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

		u := &upstream{status: http.StatusBadGateway, body: "oops"}
		res := newClient(t, u, gateway.WithFeedCache(cache)).FetchPodcastFeed(context.Background())
		assert.True(t, res.Failed())
	})

	t.Run("cache errors fall through to upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockFeedCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return("", errors.New("connection reset"))
		cache.EXPECT().Set(gomock.Any(), feed).Return(errors.New("connection reset"))

		u := &upstream{status: http.StatusOK, body: feed}
		res := newClient(t, u, gateway.WithFeedCache(cache)).FetchPodcastFeed(context.Background())

		require.Equal(t, gateway.OutcomeOK, res.Outcome)
		assert.Equal(t, feed, res.Data)
	})
}
