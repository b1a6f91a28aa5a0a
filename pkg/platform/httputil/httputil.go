// Package httputil holds the JSON response helpers shared by every handler.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dErrors "chapel/pkg/domain-errors"
)

// ErrorResponse is the JSON envelope for coded errors.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope. Internal
// errors never expose their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	resp := ErrorResponse{Error: string(code)}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if errors.As(err, &de) {
			resp.ErrorDescription = de.Message
		}
	}
	WriteJSON(w, dErrors.HTTPStatus(code), resp)
}

// DecodeJSON decodes the request body into T, rejecting empty bodies.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, dErrors.Wrap(err, dErrors.CodeBadRequest, "request body is empty")
		}
		return v, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	return v, nil
}
