package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed pgx/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations for the given driver.
// Each supported driver ships its own migration directory because the two
// dialects spell auto-increment keys and timestamp defaults differently.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, driver); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
