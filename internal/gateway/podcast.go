package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"chapel/pkg/platform/sentinel"
	"chapel/pkg/requestcontext"
)

var rssHeader = http.Header{"Accept": {"application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.1"}}

// FetchPodcastFeed proxies the upstream RSS feed and returns its body unmodified.
// No XML validation happens here.
//
// Both an upstream non-success status and a transport error fail; the two differ
// only in the failure message. When a feed cache is configured, a warm entry is
// served without going upstream and only successful bodies are stored.
func (c *Client) FetchPodcastFeed(ctx context.Context) Result[PodcastFeed] {
	if xml, hit := c.cachedFeed(ctx); hit {
		return ok(xml)
	}

	ctx, done := c.startOp(ctx, OpFetchPodcastFeed, c.endpoints.PodcastRSS)

	resp, err := c.send(ctx, http.MethodGet, c.endpoints.PodcastRSS, nil, rssHeader)
	if err != nil {
		done(OutcomeFailed, err)
		return failed[PodcastFeed](newError(OpFetchPodcastFeed,
			"Failed to fetch podcast feed: "+err.Error(), err))
	}
	if !resp.success() {
		err = statusError(resp.StatusCode)
		done(OutcomeFailed, err)
		return failed[PodcastFeed](newError(OpFetchPodcastFeed,
			fmt.Sprintf("Failed to fetch podcast feed: upstream returned status %d", resp.StatusCode), err))
	}

	xml := string(resp.Body)
	c.storeFeed(ctx, xml)

	done(OutcomeOK, nil)
	return ok(xml)
}

func (c *Client) cachedFeed(ctx context.Context) (string, bool) {
	if c.feedCache == nil {
		return "", false
	}
	xml, err := c.feedCache.Get(ctx)
	switch {
	case err == nil:
		c.metrics.IncrementFeedCache(true)
		return xml, true
	case !errors.Is(err, sentinel.ErrNotFound):
		c.logger.WarnContext(ctx, "podcast feed cache read failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	c.metrics.IncrementFeedCache(false)
	return "", false
}

func (c *Client) storeFeed(ctx context.Context, xml string) {
	if c.feedCache == nil {
		return
	}
	if err := c.feedCache.Set(ctx, xml); err != nil {
		c.logger.WarnContext(ctx, "podcast feed cache write failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}
