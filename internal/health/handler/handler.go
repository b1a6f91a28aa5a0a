package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"chapel/internal/health"
	"chapel/pkg/platform/httputil"
	"chapel/pkg/requestcontext"
)

const readyTimeout = 2 * time.Second

// Reporter produces liveness snapshots.
type Reporter interface {
	SnapshotAt(now time.Time) health.Snapshot
}

// Pinger is implemented by the redis client.
type Pinger interface {
	Health(ctx context.Context) error
}

// ReadyResponse is the body of GET /api/ready.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Handler serves liveness and readiness.
type Handler struct {
	reporter Reporter
	cache    Pinger
	logger   *slog.Logger
}

// New builds a health handler. cache may be nil when redis is not configured.
func New(reporter Reporter, cache Pinger, logger *slog.Logger) *Handler {
	return &Handler{reporter: reporter, cache: cache, logger: logger}
}

// Register mounts the health routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/health", h.HandleHealth)
	r.Get("/api/ready", h.HandleReady)
}

// HandleHealth always answers 200.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.reporter.SnapshotAt(requestcontext.Now(r.Context())))
}

// HandleReady reports 503 when a configured dependency does not answer.
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := ReadyResponse{Status: "ready", Checks: map[string]string{"cache": "disabled"}}
	status := http.StatusOK

	if h.cache != nil {
		pingCtx, cancel := context.WithTimeout(ctx, readyTimeout)
		defer cancel()
		if err := h.cache.Health(pingCtx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed",
				"request_id", requestcontext.RequestID(ctx),
				"check", "cache",
				"error", err,
			)
			resp.Status = "unavailable"
			resp.Checks["cache"] = "unavailable"
			status = http.StatusServiceUnavailable
		} else {
			resp.Checks["cache"] = "ok"
		}
	}

	httputil.WriteJSON(w, status, resp)
}
