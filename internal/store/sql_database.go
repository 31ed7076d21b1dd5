package store

import (
	"context"
	"database/sql"

	"github.com/buckylist/bucky/internal/config"
	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/migrations"
)

// DB wraps a database/sql connection pool together with the application
// logger. Repositories receive a *DB and use the embedded *sql.DB directly.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnectDatabase opens a connection to the backend selected by
// cfg.Driver: "pgx" for PostgreSQL or "sqlite3" for a local SQLite file.
func NewConnectDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

// Migrate applies all pending schema migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
