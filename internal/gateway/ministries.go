package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"chapel/pkg/platform/sentinel"
)

// ministriesQuery asks the content listing for ministries in ascending name order.
func ministriesQuery() url.Values {
	return url.Values{
		"type":    {"ministry"},
		"sortKey": {"name"},
		"sortDir": {"asc"},
	}
}

// FetchMinistries returns at most MaxMinistries records in endpoint order.
//
// Non-success status, transport errors and undecodable bodies fail with
// MsgFetchMinistries. A decodable body that is not a list (an object, null, a
// scalar) degrades to an empty list rather than failing.
func (c *Client) FetchMinistries(ctx context.Context) Result[[]Ministry] {
	target := c.endpoints.ContentList + "?" + ministriesQuery().Encode()
	ctx, done := c.startOp(ctx, OpFetchMinistries, target)

	resp, err := c.send(ctx, http.MethodGet, target, nil, jsonHeader)
	if err == nil && !resp.success() {
		err = statusError(resp.StatusCode)
	}
	if err != nil {
		done(OutcomeFailed, err)
		return failed[[]Ministry](newError(OpFetchMinistries, MsgFetchMinistries, err))
	}

	var raw json.RawMessage
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		err = fmt.Errorf("%w: %w", sentinel.ErrMalformed, err)
		done(OutcomeFailed, err)
		return failed[[]Ministry](newError(OpFetchMinistries, MsgFetchMinistries, err))
	}

	var records []Ministry
	if !isJSONArray(raw) || json.Unmarshal(raw, &records) != nil {
		reason := fmt.Errorf("%w: ministries listing is not a list", sentinel.ErrMalformed)
		done(OutcomeDegraded, reason)
		return degraded([]Ministry{}, reason)
	}

	if len(records) > MaxMinistries {
		records = records[:MaxMinistries]
	}
	if records == nil {
		records = []Ministry{}
	}

	done(OutcomeOK, nil)
	return ok(records)
}
