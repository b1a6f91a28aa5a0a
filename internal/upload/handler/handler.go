package handler

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chapel/internal/platform/config"
	"chapel/internal/upload"
	dErrors "chapel/pkg/domain-errors"
	"chapel/pkg/platform/httputil"
	"chapel/pkg/requestcontext"
)

// multipartOverhead allows for boundaries and form fields around the file part.
const multipartOverhead = 64 * 1024

// ValidateResponse is returned by POST /api/uploads/validate.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Handler checks uploads against the size limit before the portal accepts them.
type Handler struct {
	logger *slog.Logger
}

// New constructs an upload handler.
func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register mounts upload endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/uploads/validate", h.HandleValidate)
}

// HandleValidate accepts either a multipart form with a "file" part or a JSON
// body {"byteSize": n}.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	candidate, err := h.candidateFrom(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid upload validation request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if !upload.IsSizeValid(candidate) {
		httputil.WriteJSON(w, http.StatusRequestEntityTooLarge, ValidateResponse{
			Valid: false,
			Error: upload.SizeErrorMessage(),
		})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ValidateResponse{Valid: true})
}

func (h *Handler) candidateFrom(w http.ResponseWriter, r *http.Request) (*upload.Candidate, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		// A JSON null decodes to a nil candidate, which is invalid.
		c, err := httputil.DecodeJSON[*upload.Candidate](r)
		if err != nil {
			return nil, err
		}
		if c != nil && c.ByteSize < 0 {
			return nil, dErrors.New(dErrors.CodeBadRequest, "byteSize must not be negative")
		}
		return c, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			// Body alone already exceeds the limit.
			return &upload.Candidate{ByteSize: tooLarge.Limit + 1}, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid multipart body")
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	_, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			// No file selected.
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid file part")
	}
	return &upload.Candidate{ByteSize: header.Size}, nil
}
