// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// content console. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds console-level settings such as the log file and the page
	// size of the content plan table.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend REST API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds console-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file. The terminal is owned by
	// the UI, so logs never go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// PageSize is the number of content plan rows requested per page.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Storage groups the configuration of the local session storage.
type Storage struct {
	// DB holds the session database settings.
	DB DB `envPrefix:"DB_"`

	// SessionNamespace is the fixed key the auth session is stored under.
	// Env: STORAGE_SESSION_NAMESPACE
	SessionNamespace string `env:"SESSION_NAMESPACE"`
}

// DB holds connection settings for the local session database.
type DB struct {
	// DSN is either a SQLite database file path or, when it ends in
	// ".json", the path of a plain JSON session file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the backend REST API client.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "http://localhost:8000").
	// A bare "host:port" is accepted and gets an http:// scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outgoing request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ProfileRefreshInterval is how often the signed-in user's profile is
	// re-fetched from GET /auth/me.
	// Env: WORKERS_PROFILE_REFRESH_INTERVAL
	ProfileRefreshInterval time.Duration `env:"PROFILE_REFRESH_INTERVAL"`
}

// Defaults applied when no source sets a value.
const (
	DefaultAdapterAddress         = "http://localhost:8000"
	DefaultRequestTimeout         = 15 * time.Second
	DefaultDBDSN                  = "content-console.db"
	DefaultSessionNamespace       = "kh-auth"
	DefaultLogFile                = "content-console.log"
	DefaultProfileRefreshInterval = 5 * time.Minute
	DefaultPageSize               = 50
	MaxPageSize                   = 500
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:  DefaultLogFile,
			PageSize: DefaultPageSize,
		},
		Storage: Storage{
			DB:               DB{DSN: DefaultDBDSN},
			SessionNamespace: DefaultSessionNamespace,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			ProfileRefreshInterval: DefaultProfileRefreshInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from the process
// arguments, the environment (and a .env file in the working directory, if
// any), the JSON file and the defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv(".env").
		withJSON().
		withDefaults().
		build()
}
