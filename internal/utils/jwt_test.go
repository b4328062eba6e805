package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestTokenExpiresAt_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "editor@example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, err := TokenExpiresAt(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
	if got.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", got.Location())
	}
}

func TestTokenExpiresAt_AlreadyExpiredIsNotAnError(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := TokenExpiresAt(token)

	if err != nil {
		t.Fatalf("expected no error for an expired token, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
}

func TestTokenExpiresAt_NoExp(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "x"})

	_, err := TokenExpiresAt(token)

	if !errors.Is(err, ErrNoExpiry) {
		t.Fatalf("expected ErrNoExpiry, got: %v", err)
	}
}

func TestTokenExpiresAt_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"two segments", "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TokenExpiresAt(tt.token); err == nil {
				t.Error("expected error for malformed token, got nil")
			}
		})
	}
}

func TestTokenSubject(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "editor@example.com"})

	sub, err := TokenSubject(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if sub != "editor@example.com" {
		t.Errorf("expected subject, got %q", sub)
	}
}
