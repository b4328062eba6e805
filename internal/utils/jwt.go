package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiresAt for a token without an exp claim.
var ErrNoExpiry = errors.New("token has no exp claim")

// TokenExpiresAt reads the exp claim of a JWT access token without verifying
// its signature.
//
// The console never holds the signing key: the backend is the only party
// that validates tokens. The expiry is used for display and for skipping
// profile refreshes of an already expired session.
//
// Returns:
//
//	time.Time - expiration moment in UTC
//	error     - non-nil if the token is malformed or has no exp claim
//
// Example usage:
//
//	exp, err := utils.TokenExpiresAt(session.Token)
//	if err == nil && time.Now().After(exp) {
//	    // session expired
//	}
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error occurred reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.UTC(), nil
}

// TokenSubject returns the sub claim of a JWT access token without
// verifying its signature. An empty string means the claim is missing.
func TokenSubject(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("error occurred parsing token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred reading sub claim: %w", err)
	}
	return sub, nil
}
