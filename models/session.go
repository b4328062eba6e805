// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthSession is the client-side snapshot of the signed-in state. It is the
// only thing persisted by the console between runs.
//
// An empty Token means "no token". User is set separately once the profile
// request has resolved and may be nil while Token is set.
type AuthSession struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// HasToken reports whether s carries a bearer token.
func (s AuthSession) HasToken() bool {
	return s.Token != ""
}

// Clone returns a deep copy of s so that callers cannot mutate the user
// profile held by a session store.
func (s AuthSession) Clone() AuthSession {
	out := AuthSession{Token: s.Token}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}
