// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessToken is the body of a successful POST /auth/login response.
type AccessToken struct {
	// AccessToken is the compact JWT to send as a bearer credential.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer" for the current backend.
	TokenType string `json:"token_type"`
}

// String returns the compact token.
func (t AccessToken) String() string {
	return t.AccessToken
}
