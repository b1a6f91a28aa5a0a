package gateway

import (
	"errors"
)

// Fixed, user-facing failure messages. They never include transport detail.
const (
	MsgFetchFAQs       = "Failed to fetch FAQs"
	MsgStoreFAQ        = "Failed to store FAQ"
	MsgFetchMinistries = "Failed to fetch ministries"
)

// Operation names, used for errors, spans and metrics.
const (
	OpFetchFAQs        = "fetch_faqs"
	OpStoreFAQ         = "store_faq"
	OpFetchMinistries  = "fetch_ministries"
	OpFetchPodcastFeed = "fetch_podcast_feed"
)

// GatewayError is the failure carried by a failed Result. Error() returns only the
// message; the underlying cause is reachable through errors.Unwrap for logging.
type GatewayError struct {
	Op      string
	Message string
	Cause   error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

func newError(op, msg string, cause error) *GatewayError {
	return &GatewayError{Op: op, Message: msg, Cause: cause}
}

// AsGatewayError extracts a *GatewayError from err.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
