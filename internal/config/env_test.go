// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE":  "/tmp/console.log",
		"APP_PAGE_SIZE": "100",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DSN":            "/tmp/console.db",
		"STORAGE_SESSION_NAMESPACE": "kh-auth-test",

		"ADAPTER_ADDRESS":         "http://backend:8000",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"WORKERS_PROFILE_REFRESH_INTERVAL": "2m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/console.log", cfg.App.LogFile)
	assert.Equal(t, 100, cfg.App.PageSize)
	assert.Equal(t, "/tmp/console.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "kh-auth-test", cfg.Storage.SessionNamespace)
	assert.Equal(t, "http://backend:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.ProfileRefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("APP_PAGE_SIZE", "fifty")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

// ── loadDotEnv ────────────────────────────────────────────────────────────────

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnv_ExportsVariables(t *testing.T) {
	const key = "CONTENT_CONSOLE_DOTENV_PROBE"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	p := writeTempFile(t, ".env", key+"=from-dotenv\n")

	require.NoError(t, loadDotEnv(p))
	assert.Equal(t, "from-dotenv", os.Getenv(key))
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	const key = "CONTENT_CONSOLE_DOTENV_KEEP"
	t.Setenv(key, "from-shell")

	p := writeTempFile(t, ".env", key+"=from-dotenv\n")

	require.NoError(t, loadDotEnv(p))
	assert.Equal(t, "from-shell", os.Getenv(key))
}
