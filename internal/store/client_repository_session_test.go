// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/models"
)

// newMockRepo создаёт репозиторий поверх sqlmock и фиксирует время.
func newMockRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &sessionRepository{
		db:     &DB{DB: db, logger: logger.Nop()},
		logger: logger.Nop(),
		now:    func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
	return repo, mock
}

// ── Query builders ──

func TestBuildSessionQueries(t *testing.T) {
	query, args, err := buildLoadSessionQuery("kh-auth")
	require.NoError(t, err)
	assert.Equal(t, "SELECT payload FROM client_state WHERE namespace = ? LIMIT 1", query)
	assert.Equal(t, []any{"kh-auth"}, args)

	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	query, args, err = buildSaveSessionQuery("kh-auth", `{}`, at)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO client_state (namespace,payload,updated_at) VALUES (?,?,?)")
	assert.Contains(t, query, "ON CONFLICT(namespace) DO UPDATE")
	assert.Equal(t, []any{"kh-auth", `{}`, at}, args)

	query, args, err = buildDeleteSessionQuery("kh-auth")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM client_state WHERE namespace = ?", query)
	assert.Equal(t, []any{"kh-auth"}, args)
}

// ── Load ──

func TestSessionRepository_Load(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rows := sqlmock.NewRows([]string{"payload"}).
			AddRow(`{"token":"abc","user":{"id":"u1","email":"a@b.c","name":"","is_active":true,"is_superuser":false}}`)
		mock.ExpectQuery(`SELECT payload FROM client_state`).WithArgs("kh-auth").WillReturnRows(rows)

		session, err := repo.Load(context.Background(), "kh-auth")
		require.NoError(t, err)
		assert.Equal(t, "abc", session.Token)
		require.NotNil(t, session.User)
		assert.Equal(t, "a@b.c", session.User.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT payload FROM client_state`).WithArgs("kh-auth").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}))

		_, err := repo.Load(context.Background(), "kh-auth")
		assert.ErrorIs(t, err, ErrLocalSessionNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT payload FROM client_state`).WillReturnError(errors.New("disk I/O error"))

		_, err := repo.Load(context.Background(), "kh-auth")
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("broken payload", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT payload FROM client_state`).
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow("not json"))

		_, err := repo.Load(context.Background(), "kh-auth")
		assert.ErrorIs(t, err, ErrDecodingSession)
	})
}

// ── Save / Delete ──

func TestSessionRepository_Save(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`INSERT INTO client_state`).
		WithArgs("kh-auth", `{"token":"abc","user":null}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), "kh-auth", models.AuthSession{Token: "abc"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_SaveError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`INSERT INTO client_state`).WillReturnError(errors.New("database is locked"))

	err := repo.Save(context.Background(), "kh-auth", models.AuthSession{Token: "abc"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`DELETE FROM client_state`).WithArgs("kh-auth").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "kh-auth"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`DELETE FROM client_state`).WillReturnError(errors.New("boom"))

	err := repo.Delete(context.Background(), "kh-auth")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
