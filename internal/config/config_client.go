package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ClientApp holds console-level settings derived from the shared
// structured config.
type ClientApp struct {
	// LogFile is the JSON log file path; empty discards logs.
	LogFile string
	// PageSize is the content plan page size.
	PageSize int
}

// ClientAdapter holds network settings used by the REST adapter.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path or a *.json session file path.
	DSN string
}

// IsJSONFile reports whether the DSN selects the plain JSON session file.
func (d ClientDB) IsJSONFile() bool {
	return strings.HasSuffix(strings.ToLower(d.DSN), ".json")
}

// ClientStorage groups session storage settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SessionNamespace is the key the auth session is stored under.
	SessionNamespace string
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// ProfileRefreshInterval defines how often the profile is re-fetched.
	ProfileRefreshInterval time.Duration
}

// ClientConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains console-level settings.
	App ClientApp
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
	// Storage contains session storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the console config from the
// process arguments and environment.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig is [GetClientConfig] for an explicit argument list.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the console runtime and validates the resulting
// [ClientConfig].
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			PageSize: cfg.App.PageSize,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			SessionNamespace: cfg.Storage.SessionNamespace,
		},
		Workers: ClientWorkers{ProfileRefreshInterval: cfg.Workers.ProfileRefreshInterval},
	}
}
