// Package admin guards write routes that mutate remote content stores.
package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	dErrors "chapel/pkg/domain-errors"
	"chapel/pkg/platform/httputil"
	"chapel/pkg/requestcontext"
)

// HeaderName is the request header carrying the shared admin token.
const HeaderName = "X-Admin-Token"

// RequireAdminToken rejects requests whose X-Admin-Token does not match expectedToken.
// An empty expectedToken rejects every request.
func RequireAdminToken(expectedToken string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderName)
			if expectedToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin token mismatch",
					"request_id", requestcontext.RequestID(ctx),
					"path", r.URL.Path,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "admin token required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
