package repository

import (
	"context"
	"errors"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
)

// ErrDuplicateIdentity is returned by InsertAccount when another row already
// holds the same (network, external_id) pair
var ErrDuplicateIdentity = errors.New("duplicate account identity")

// Account defines the interface for account persistence
type Account interface {
	// GetAccountByIdentity returns domain.ErrAccountNotFound when no row matches
	GetAccountByIdentity(ctx context.Context, network domain.Network, externalID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// InsertAccount fills CreatedAt/UpdatedAt on success and returns ErrDuplicateIdentity on a uniqueness conflict
	InsertAccount(ctx context.Context, account *domain.Account) error
	UpdateAccountDisplay(ctx context.Context, accountID, handle, displayName, avatarURL string) error

	// CompareAndSetLocked sets is_locked to next only if the account is unclaimed and
	// is_locked currently equals expected. It reports whether a row was updated.
	CompareAndSetLocked(ctx context.Context, accountID string, expected, next bool) (bool, error)

	// MarkClaimed reports whether the account moved from unclaimed to claimed
	MarkClaimed(ctx context.Context, accountID string) (bool, error)
}
