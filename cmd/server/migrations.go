package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/DariushJinx/restaurants-api/migrations"
	"github.com/pressly/goose/v3"
)

// runMigrations applies all pending database migrations from the embedded
// migration files. It is safe to call on every startup; goose tracks the
// applied version in the database.
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	slog.Info("Database migrations applied", "version", version)
	return nil
}
