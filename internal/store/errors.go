// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrLocalSessionNotFound is returned by [SessionRepository.Load] when the
// namespace holds no session.
var ErrLocalSessionNotFound = errors.New("local session not found")

// Low-level storage errors. Repository methods wrap these so callers can
// match the failing step with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when a session row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan session row")

	// ErrEncodingSession is returned when a session cannot be marshalled.
	ErrEncodingSession = errors.New("failed to encode session")

	// ErrDecodingSession is returned when a stored payload is not a valid
	// session document.
	ErrDecodingSession = errors.New("failed to decode session")
)
