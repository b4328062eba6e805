// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/content-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the durable key-value storage of the auth session.
// Each namespace holds at most one session snapshot.
type SessionRepository interface {
	// Load returns the snapshot stored under namespace or
	// ErrLocalSessionNotFound when nothing was saved yet.
	Load(ctx context.Context, namespace string) (models.AuthSession, error)
	// Save replaces the snapshot stored under namespace.
	Save(ctx context.Context, namespace string, session models.AuthSession) error
	// Delete removes the snapshot. Deleting a missing namespace is not an error.
	Delete(ctx context.Context, namespace string) error
}
