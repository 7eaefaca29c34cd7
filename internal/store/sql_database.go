package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	dialect string
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Backends without transient failure modes may return a
// classifier that always answers NonRetryable.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// NewConnect opens the database selected by the DSN: a "postgres://" or
// "postgresql://" DSN selects the PostgreSQL backend, any other value is
// treated as an SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate brings the schema up to date. PostgreSQL runs the embedded goose
// migrations; the SQLite schema is bootstrapped at connect time, so there is
// nothing left to do here.
func (db *DB) Migrate() error {
	if db.dialect == dialectSQLite {
		return nil
	}
	return migrations.Migrate(db.DB)
}
