// Package handler accepts client-side performance reports. Reports are
// acknowledged and, in development, logged. Nothing is stored or forwarded.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mssola/useragent"

	"chapel/internal/platform/config"
	"chapel/internal/platform/metrics"
	"chapel/pkg/platform/httputil"
	"chapel/pkg/requestcontext"
)

// maxReportBytes bounds a single report body.
const maxReportBytes = 64 * 1024

const (
	// MsgProcessFailed is returned for bodies that are not JSON.
	MsgProcessFailed = "Failed to process vitals"
	// MsgTooLarge is returned for bodies over maxReportBytes.
	MsgTooLarge = "Vitals report too large"
)

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler is the vitals sink.
type Handler struct {
	env     config.Environment
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New builds a vitals handler. m may be nil.
func New(env config.Environment, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{env: env, logger: logger, metrics: m}
}

// Register mounts POST /api/vitals.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/vitals", h.HandleVitals)
}

// HandleVitals accepts any JSON value.
func (h *Handler) HandleVitals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxReportBytes))
	var payload any
	if err == nil {
		err = json.Unmarshal(raw, &payload)
	}
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		h.metrics.IncrementVitals("rejected")
		h.logger.WarnContext(ctx, "vitals report too large",
			"request_id", requestID,
			"limit_bytes", tooLarge.Limit,
		)
		httputil.WriteJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: MsgTooLarge})
		return
	case err != nil:
		h.metrics.IncrementVitals("rejected")
		h.logger.ErrorContext(ctx, "error processing vitals",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: MsgProcessFailed})
		return
	}

	h.metrics.IncrementVitals("accepted")
	if h.env.IsDevelopment() {
		ua := useragent.New(r.UserAgent())
		browser, browserVersion := ua.Browser()
		h.logger.DebugContext(ctx, "web vitals received",
			"request_id", requestID,
			"payload", payload,
			slog.Group("client",
				"browser", browser,
				"browser_version", browserVersion,
				"os", ua.OS(),
				"mobile", ua.Mobile(),
				"bot", ua.Bot(),
			),
		)
	}

	httputil.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}
