package models

import "time"

// RateLimitResult is the outcome of one limiter check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is whole seconds until the next request would be admitted.
	RetryAfter int
}

// RateLimitExceededResponse is the 429 body.
type RateLimitExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}
