package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
)

// parseAccountUUID parses an account ID; malformed IDs cannot exist in the
// table, so they are reported as ErrAccountNotFound.
func parseAccountUUID(accountID string) (uuid.UUID, error) {
	u, err := uuid.Parse(accountID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid account id %q", domain.ErrAccountNotFound, accountID)
	}
	return u, nil
}

// isUniqueViolation reports whether err is a unique violation on the named constraint.
// An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// storeError marks err as ErrUnavailable while keeping the driver error in the chain
func storeError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, domain.ErrUnavailable, err)
}

// ptrTime converts a nullable timestamp to *time.Time
func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
