package metadata

import (
	"net"
	"net/http"
	"strings"

	"chapel/pkg/requestcontext"
)

// ClientMetadata extracts client IP address and User-Agent from the request
// and adds them to the context for use by handlers and rate limiting.
// This middleware should be applied early in the chain.
//
// trustedHops is the number of reverse proxies in front of the service. With
// zero, forwarding headers are ignored and the peer address is the client.
func ClientMetadata(trustedHops int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r, trustedHops), r.Header.Get("User-Agent"))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIPFromRequest extracts the client IP. Each trusted proxy appends the
// address it saw to X-Forwarded-For, so the client is the trustedHops-th entry
// from the right; anything left of it is caller-supplied and ignored.
func ClientIPFromRequest(r *http.Request, trustedHops int) string {
	if trustedHops > 0 {
		if hops := forwardedFor(r); len(hops) >= trustedHops {
			return hops[len(hops)-trustedHops]
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}

	return "unknown"
}

// forwardedFor flattens every X-Forwarded-For header, left to right.
func forwardedFor(r *http.Request) []string {
	var hops []string
	for _, v := range r.Header.Values("X-Forwarded-For") {
		for _, hop := range strings.Split(v, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	return hops
}
