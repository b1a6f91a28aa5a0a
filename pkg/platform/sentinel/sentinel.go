package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Upstream clients and caches return
// these (optionally wrapped) so callers can classify failures without string matching.
//
// - ErrNotFound: key absent from a cache or store
// - ErrUnavailable: upstream could not be reached or answered with a non-success status
// - ErrMalformed: upstream answered but the body could not be decoded
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrMalformed   = errors.New("malformed")
)
