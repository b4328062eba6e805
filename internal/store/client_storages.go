package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/content-console/internal/config"
	"github.com/MKhiriev/content-console/internal/logger"
)

// ClientStorages groups the console's local storage into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// SessionRepository persists the auth session between runs.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages initialises the local storage selected by cfg.DB.DSN:
//   - a "*.json" path selects the plain JSON file store;
//   - anything else is opened as an SQLite database, created when missing
//     and migrated with [DB.Migrate].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.IsJSONFile() {
		repo, err := NewFileSessionRepository(cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("session file error: %w", err)
		}
		return &ClientStorages{SessionRepository: repo}, nil
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
