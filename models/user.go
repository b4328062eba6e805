// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the profile of the signed-in account as returned by GET /auth/me.
// It is display data only: authorization decisions are made by the backend.
type User struct {
	// ID is the backend identifier (UUID string) of the account.
	ID string `json:"id"`

	// Email is the login of the account. The login form sends it as the
	// "username" form field.
	Email string `json:"email"`

	// Name is the display name shown in the console header.
	Name string `json:"name"`

	// IsActive reports whether the account may sign in.
	IsActive bool `json:"is_active"`

	// IsSuperuser grants access to user and membership administration.
	IsSuperuser bool `json:"is_superuser"`

	// CanViewAllContent widens content plan visibility from own items to all
	// items of the accessible projects.
	CanViewAllContent bool `json:"can_view_all_content,omitempty"`
}

// DisplayName returns the name to show for u, falling back to the email.
// A nil user yields an empty string.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
