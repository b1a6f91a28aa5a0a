// Package httptransport assembles the public HTTP surface. Feature packages own
// their routes; this package only orders the shared middleware and mounts them.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dErrors "chapel/pkg/domain-errors"
	"chapel/pkg/platform/httputil"
	"chapel/pkg/platform/middleware/metadata"
	"chapel/pkg/platform/middleware/request"
	"chapel/pkg/platform/middleware/requesttime"
)

// requestTimeout bounds a whole request, outbound gateway calls included.
const requestTimeout = 30 * time.Second

// Registrar is implemented by every feature handler.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter applies the shared middleware chain and mounts each handler.
// A nil gatherer leaves /metrics unmounted. trustedProxyHops is passed to the
// client metadata middleware.
func NewRouter(logger *slog.Logger, gatherer prometheus.Gatherer, trustedProxyHops int, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata(trustedProxyHops))
	r.Use(request.Logger(logger))
	r.Use(chimw.Timeout(requestTimeout))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{Error: "method_not_allowed"})
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	for _, h := range handlers {
		h.Register(r)
	}
	return r
}
