// Package handler exposes the content gateway to the site: FAQs, ministries and
// the podcast feed proxy.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chapel/internal/gateway"
	dErrors "chapel/pkg/domain-errors"
	"chapel/pkg/platform/httputil"
	"chapel/pkg/requestcontext"
)

// HeaderContentDegraded marks a 200 whose upstream content was unusable.
const HeaderContentDegraded = "X-Content-Degraded"

// Gateway is the subset of the content gateway the handler calls.
type Gateway interface {
	FetchFAQs(ctx context.Context) gateway.Result[[]gateway.FAQ]
	StoreFAQ(ctx context.Context, question, answer string) gateway.Result[gateway.StoredFAQAck]
	FetchMinistries(ctx context.Context) gateway.Result[[]gateway.Ministry]
	FetchPodcastFeed(ctx context.Context) gateway.Result[gateway.PodcastFeed]
}

// FailureResponse carries a gateway failure message.
type FailureResponse struct {
	Error string `json:"error"`
}

// PodcastResponse is the body of GET /api/podcast-rss.
type PodcastResponse struct {
	Success bool   `json:"success"`
	XML     string `json:"xml,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Handler serves content routes.
type Handler struct {
	gateway     Gateway
	logger      *slog.Logger
	writeGuards []func(http.Handler) http.Handler
}

// New builds a content handler. writeGuards wrap the mutating routes only.
func New(gw Gateway, logger *slog.Logger, writeGuards ...func(http.Handler) http.Handler) *Handler {
	return &Handler{gateway: gw, logger: logger, writeGuards: writeGuards}
}

// Register mounts the content routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/faqs", h.HandleListFAQs)
	r.With(h.writeGuards...).Post("/api/faqs", h.HandleStoreFAQ)
	r.Get("/api/ministries", h.HandleListMinistries)
	r.Get("/api/podcast-rss", h.HandlePodcastFeed)
}

// HandleListFAQs returns FAQs in store order.
func (h *Handler) HandleListFAQs(w http.ResponseWriter, r *http.Request) {
	res := h.gateway.FetchFAQs(r.Context())
	if res.Failed() {
		h.writeFailure(w, r, res.Err)
		return
	}
	h.markDegraded(w, res.Outcome)
	httputil.WriteJSON(w, http.StatusOK, res.Data)
}

// HandleStoreFAQ forwards a new FAQ to the store.
func (h *Handler) HandleStoreFAQ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := httputil.DecodeJSON[gateway.StoreFAQRequest](r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid store faq request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	res := h.gateway.StoreFAQ(ctx, req.Question, req.Answer)
	if res.Failed() {
		h.writeFailure(w, r, res.Err)
		return
	}

	h.logger.InfoContext(ctx, "faq stored",
		"request_id", requestcontext.RequestID(ctx),
		"outcome", res.Outcome.String(),
	)
	h.markDegraded(w, res.Outcome)
	ack := res.Data
	if ack == nil {
		ack = gateway.StoredFAQAck{"success": true}
	}
	httputil.WriteJSON(w, http.StatusCreated, ack)
}

// HandleListMinistries returns up to three ministries.
func (h *Handler) HandleListMinistries(w http.ResponseWriter, r *http.Request) {
	res := h.gateway.FetchMinistries(r.Context())
	if res.Failed() {
		h.writeFailure(w, r, res.Err)
		return
	}
	h.markDegraded(w, res.Outcome)
	httputil.WriteJSON(w, http.StatusOK, res.Data)
}

// HandlePodcastFeed wraps the raw feed in a JSON envelope.
func (h *Handler) HandlePodcastFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := h.gateway.FetchPodcastFeed(ctx)
	if res.Failed() {
		h.logger.ErrorContext(ctx, "error fetching podcast feed",
			"request_id", requestcontext.RequestID(ctx),
			"error", res.Err,
		)
		httputil.WriteJSON(w, http.StatusInternalServerError, PodcastResponse{
			Success: false,
			Error:   res.Err.Error(),
		})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PodcastResponse{Success: true, XML: res.Data})
}

// writeFailure renders a failed gateway call as 502 with its fixed message.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	ge, ok := gateway.AsGatewayError(err)
	if !ok {
		h.logger.ErrorContext(ctx, "unexpected gateway error",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "internal error"))
		return
	}
	h.logger.ErrorContext(ctx, "content gateway failed",
		"request_id", requestcontext.RequestID(ctx),
		"operation", ge.Op,
		"cause", ge.Cause,
	)
	httputil.WriteJSON(w, http.StatusBadGateway, FailureResponse{Error: ge.Message})
}

func (h *Handler) markDegraded(w http.ResponseWriter, outcome gateway.Outcome) {
	if outcome == gateway.OutcomeDegraded {
		w.Header().Set(HeaderContentDegraded, "true")
	}
}
