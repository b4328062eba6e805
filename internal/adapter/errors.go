package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for non-2xx backend responses. They are always wrapped in
// an [*APIError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx response of the backend.
type APIError struct {
	// Status is the HTTP status code.
	Status int
	// Detail is the backend's "detail" message, the first validation
	// message, or the raw body when the body is not JSON.
	Detail string

	kind error
}

// NewAPIError builds the error for a response with the given status and
// detail message.
func NewAPIError(status int, detail string) *APIError {
	return &APIError{Status: status, Detail: detail, kind: statusKind(status)}
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.Status)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.Status, e.Detail)
}

// Unwrap returns the sentinel matching Status.
func (e *APIError) Unwrap() error {
	return e.kind
}

// ErrorDetail returns the backend detail message carried by err, if any.
func ErrorDetail(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	return "", false
}
