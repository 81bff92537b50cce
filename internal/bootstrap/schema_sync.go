package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PledgeBoard_Go/internal/database"
)

// SyncSchema brings the database schema up to the embedded migrations.
// Already-applied versions are skipped, so it is safe on every start.
func SyncSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	slog.Info(LogMsgSyncingSchema)

	applied, err := database.Migrate(ctx, dbPool)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncSchema, err)
	}

	if len(applied) > 0 {
		slog.Info(LogMsgSchemaSynced, "applied", applied)
	}
	return nil
}
