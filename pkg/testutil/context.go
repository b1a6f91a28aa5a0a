package testutil

import (
	"net/http"
	"time"

	"chapel/pkg/requestcontext"
)

// WithRequestID attaches a request ID as the request ID middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithClient attaches client IP and User-Agent as the metadata middleware would.
// The User-Agent header is set too so handlers reading either source agree.
func WithClient(req *http.Request, clientIP, userAgent string) *http.Request {
	req.Header.Set("User-Agent", userAgent)
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), clientIP, userAgent))
}

// WithTime pins the request-scoped clock.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
