package config

import (
	"errors"
	"flag"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds the backend base URL passed with -a.
// It implements the flag.Value interface.
type BaseURL struct {
	URL string
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a backend base URL (http[s]://host[:port] or host:port)
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-d session storage DSN (sqlite file or *.json file)
//	-session-namespace key the auth session is stored under
//	-log log file path
//	-page-size content plan page size
//	-profile-refresh profile refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var baseURL BaseURL
	var requestTimeout time.Duration
	var databaseDSN string
	var sessionNamespace string
	var logFile string
	var pageSize int
	var profileRefresh time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("content-console", flag.ContinueOnError)
	fs.Var(&baseURL, "a", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Session storage DSN")
	fs.StringVar(&sessionNamespace, "session-namespace", "", "Session storage key")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.IntVar(&pageSize, "page-size", 0, "Content plan page size")
	fs.DurationVar(&profileRefresh, "profile-refresh", 0, "Profile refresh interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile:  logFile,
			PageSize: pageSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			SessionNamespace: sessionNamespace,
		},
		Adapter: Adapter{
			HTTPAddress:    baseURL.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ProfileRefreshInterval: profileRefresh,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the normalized URL, or "" when unset.
func (a *BaseURL) String() string {
	return a.URL
}

// Set parses s as a backend base URL. A value without a scheme is treated
// as http. Only http and https URLs with a host are accepted; a trailing
// slash is dropped.
func (a *BaseURL) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("empty backend address")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("backend address must use http or https")
	}
	if u.Host == "" {
		return errors.New("backend address must include a host")
	}

	a.URL = strings.TrimRight(u.String(), "/")
	return nil
}
