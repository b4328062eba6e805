// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/content-console/internal/config"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/models"
)

// ── JSON file store ──

func TestFileSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	repo, err := NewFileSessionRepository(path)
	require.NoError(t, err)

	_, err = repo.Load(ctx, "kh-auth")
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	saved := models.AuthSession{Token: "abc", User: &models.User{ID: "u1", Email: "a@b.c"}}
	require.NoError(t, repo.Save(ctx, "kh-auth", saved))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// новый экземпляр читает то же состояние с диска
	reopened, err := NewFileSessionRepository(path)
	require.NoError(t, err)
	got, err := reopened.Load(ctx, "kh-auth")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, reopened.Delete(ctx, "kh-auth"))
	_, err = reopened.Load(ctx, "kh-auth")
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	// удаление отсутствующего ключа не ошибка
	assert.NoError(t, reopened.Delete(ctx, "missing"))
}

func TestFileSessionRepository_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileSessionRepository(filepath.Join(t.TempDir(), "s.json"))
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, "ns", models.AuthSession{Token: "t", User: &models.User{Name: "Анна"}}))
	got, err := repo.Load(ctx, "ns")
	require.NoError(t, err)
	got.User.Name = "changed"

	again, err := repo.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, "Анна", again.User.Name)
}

func TestFileSessionRepository_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

	_, err := NewFileSessionRepository(path)
	assert.ErrorIs(t, err, ErrDecodingSession)
}

// ── NewClientStorages ──

func TestNewClientStorages_JSON(t *testing.T) {
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "session.json")}}

	storages, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, storages.SessionRepository)
	assert.NoError(t, storages.Close())
}

func TestNewClientStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "console.db")}}

	storages, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.SessionRepository
	_, err = repo.Load(ctx, "kh-auth")
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	require.NoError(t, repo.Save(ctx, "kh-auth", models.AuthSession{Token: "first"}))
	require.NoError(t, repo.Save(ctx, "kh-auth", models.AuthSession{Token: "second"}))

	got, err := repo.Load(ctx, "kh-auth")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Token)
	assert.Nil(t, got.User)

	require.NoError(t, repo.Delete(ctx, "kh-auth"))
	_, err = repo.Load(ctx, "kh-auth")
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
