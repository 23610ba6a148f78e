package postgres

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"minimalpost/internal/db/migrations"
)

// Migrate applies the embedded goose migrations
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
