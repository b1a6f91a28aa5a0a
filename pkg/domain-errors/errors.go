// Package domainerrors carries coded errors that transport layers translate into
// HTTP responses. Services return these; handlers never inspect error strings.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code is a stable, client-facing error identifier.
type Code string

const (
	CodeBadRequest      Code = "bad_request"
	CodeForbidden       Code = "forbidden"
	CodeNotFound        Code = "not_found"
	CodeTooManyRequests Code = "too_many_requests"
	CodePayloadTooLarge Code = "payload_too_large"
	CodeBadGateway      Code = "bad_gateway"
	CodeInternal        Code = "internal_error"
)

// Error is a coded error with a human-readable message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a coded error that keeps cause for logging.
func Wrap(cause error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: cause}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HTTPStatus maps a code to its HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
