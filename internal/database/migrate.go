package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/jakefish18/wanikani-parser/schemas"
)

func gooseDialect(driver string) (goose.Dialect, error) {
	switch driver {
	case DriverMySQL:
		return goose.DialectMySQL, nil
	case DriverSQLite3:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate applies every pending embedded migration for the connection's driver.
func Migrate(ctx context.Context, db *sqlx.DB) (int, error) {
	dialect, err := gooseDialect(db.DriverName())
	if err != nil {
		return 0, err
	}
	fsys, err := fs.Sub(schemas.Migrations, "migrations/"+db.DriverName())
	if err != nil {
		return 0, fmt.Errorf("open %s migrations: %w", db.DriverName(), err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	for _, result := range results {
		slog.Debug("applied migration",
			"version", result.Source.Version,
			"path", result.Source.Path,
			"duration", result.Duration,
		)
	}
	return len(results), nil
}
