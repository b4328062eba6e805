package store

import (
	"database/sql"

	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
