package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusKind(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, statusKind(tt.status))
		})
	}
}

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string detail", body: `{"detail":"Invalid credentials"}`, want: "Invalid credentials"},
		{name: "validation list", body: `{"detail":[{"loc":["body"],"msg":"field required"}]}`, want: "field required"},
		{name: "list without msg", body: `{"detail":[1,2]}`, want: "[1,2]"},
		{name: "object detail", body: `{"detail":{"code":7}}`, want: `{"code":7}`},
		{name: "json without detail", body: ` {"error":"x"} `, want: `{"error":"x"}`},
		{name: "plain text", body: " upstream timeout\n", want: "upstream timeout"},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDetail([]byte(tt.body)))
		})
	}
}

func TestAPIError(t *testing.T) {
	err := error(&APIError{Status: 409, Detail: "duplicate", kind: ErrConflict})

	assert.True(t, errors.Is(err, ErrConflict))
	assert.EqualError(t, err, "conflict (http 409): duplicate")

	plain := &APIError{Status: 502, kind: ErrBadGateway}
	assert.EqualError(t, plain, "bad gateway (http 502)")
	_, ok := ErrorDetail(plain)
	assert.False(t, ok)
}
