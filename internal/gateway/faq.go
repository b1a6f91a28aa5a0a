package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"chapel/pkg/platform/sentinel"
)

var jsonHeader = http.Header{"Accept": {"application/json"}}

// FetchFAQs reads the FAQ listing in the order the store returns it.
//
// Non-success status, transport errors and undecodable bodies fail with
// MsgFetchFAQs. A decodable body that is not a list degrades to an empty list.
func (c *Client) FetchFAQs(ctx context.Context) Result[[]FAQ] {
	ctx, done := c.startOp(ctx, OpFetchFAQs, c.endpoints.FAQList)

	resp, err := c.send(ctx, http.MethodGet, c.endpoints.FAQList, nil, jsonHeader)
	if err == nil && !resp.success() {
		err = statusError(resp.StatusCode)
	}
	if err != nil {
		done(OutcomeFailed, err)
		return failed[[]FAQ](newError(OpFetchFAQs, MsgFetchFAQs, err))
	}

	var raw json.RawMessage
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		err = fmt.Errorf("%w: %w", sentinel.ErrMalformed, err)
		done(OutcomeFailed, err)
		return failed[[]FAQ](newError(OpFetchFAQs, MsgFetchFAQs, err))
	}

	if !isJSONArray(raw) {
		reason := fmt.Errorf("%w: faq listing is not a list", sentinel.ErrMalformed)
		done(OutcomeDegraded, reason)
		return degraded([]FAQ{}, reason)
	}

	faqs := []FAQ{}
	if err := json.Unmarshal(raw, &faqs); err != nil {
		// A list whose elements are not FAQ-shaped is unusable content, not a transport failure.
		reason := fmt.Errorf("%w: %w", sentinel.ErrMalformed, err)
		done(OutcomeDegraded, reason)
		return degraded([]FAQ{}, reason)
	}

	done(OutcomeOK, nil)
	return ok(faqs)
}

// StoreFAQ creates an FAQ in the remote store. question and answer are forwarded
// as-is; validation belongs to the store. No idempotency key is sent, so a caller
// retrying after a transport failure may create a duplicate.
//
// Non-success status and transport errors fail with MsgStoreFAQ. A success whose
// acknowledgement cannot be decoded degrades to a nil ack: the write happened.
func (c *Client) StoreFAQ(ctx context.Context, question, answer string) Result[StoredFAQAck] {
	ctx, done := c.startOp(ctx, OpStoreFAQ, c.endpoints.FAQStore)

	body, err := json.Marshal(StoreFAQRequest{Question: question, Answer: answer})
	if err != nil {
		done(OutcomeFailed, err)
		return failed[StoredFAQAck](newError(OpStoreFAQ, MsgStoreFAQ, err))
	}

	header := http.Header{
		"Accept":       {"application/json"},
		"Content-Type": {"application/json"},
	}
	resp, err := c.send(ctx, http.MethodPost, c.endpoints.FAQStore, body, header)
	if err == nil && !resp.success() {
		err = statusError(resp.StatusCode)
	}
	if err != nil {
		done(OutcomeFailed, err)
		return failed[StoredFAQAck](newError(OpStoreFAQ, MsgStoreFAQ, err))
	}

	var ack StoredFAQAck
	if err := json.Unmarshal(resp.Body, &ack); err != nil || ack == nil {
		reason := fmt.Errorf("%w: store acknowledgement unreadable", sentinel.ErrMalformed)
		done(OutcomeDegraded, reason)
		return degraded[StoredFAQAck](nil, reason)
	}

	done(OutcomeOK, nil)
	return ok(ack)
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
