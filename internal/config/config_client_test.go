package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestLoadClientConfig_Defaults(t *testing.T) {
	clearConsoleEnv(t)

	cfg, err := LoadClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "content-console.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "kh-auth", cfg.Storage.SessionNamespace)
	assert.Equal(t, "content-console.log", cfg.App.LogFile)
	assert.Equal(t, 50, cfg.App.PageSize)
	assert.Equal(t, 5*time.Minute, cfg.Workers.ProfileRefreshInterval)
}

func TestLoadClientConfig_InvalidPageSize(t *testing.T) {
	clearConsoleEnv(t)

	_, err := LoadClientConfig([]string{"-page-size", "501"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty namespace", mutate: func(c *ClientConfig) { c.Storage.SessionNamespace = " " }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero refresh", mutate: func(c *ClientConfig) { c.Workers.ProfileRefreshInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "page size zero", mutate: func(c *ClientConfig) { c.App.PageSize = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "page size max", mutate: func(c *ClientConfig) { c.App.PageSize = MaxPageSize }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientDB_IsJSONFile(t *testing.T) {
	assert.True(t, ClientDB{DSN: "session.JSON"}.IsJSONFile())
	assert.False(t, ClientDB{DSN: "content-console.db"}.IsJSONFile())
}
