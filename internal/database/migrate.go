package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every pending goose migration embedded in the binary.
// It returns the versions that were applied by this call.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]int64, error) {
	migrations, err := fs.Sub(migrationsFS, MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrations, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
		applied = append(applied, r.Source.Version)
	}
	if len(applied) == 0 {
		slog.Default().Info(LogMsgMigrationsUpToDate)
	}
	return applied, nil
}
