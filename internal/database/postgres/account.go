package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PledgeBoard_Go/internal/database/generated"
	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/repository"
)

// AccountRepository implements repository.Account for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
		q:  generated.New(db),
	}
}

var _ repository.Account = (*AccountRepository)(nil)

// GetAccountByIdentity finds an account by its (network, external_id) key
func (r *AccountRepository) GetAccountByIdentity(ctx context.Context, network domain.Network, externalID string) (*domain.Account, error) {
	row, err := r.q.GetAccountByIdentity(ctx, generated.GetAccountByIdentityParams{
		Network:    string(network),
		ExternalID: externalID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrAccountNotFound, network, externalID)
		}
		return nil, storeError(ErrMsgFailedToGetAccount, err)
	}
	return mapAccount(row), nil
}

// GetAccountByID finds an account by its internal ID
func (r *AccountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	id, err := parseAccountUUID(accountID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
		}
		return nil, storeError(ErrMsgFailedToGetAccount, err)
	}
	return mapAccount(row), nil
}

// InsertAccount creates the row. A concurrent insert of the same identity
// surfaces as repository.ErrDuplicateIdentity so the caller can re-fetch.
func (r *AccountRepository) InsertAccount(ctx context.Context, account *domain.Account) error {
	id, err := parseAccountUUID(account.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAccount, err)
	}

	stamps, err := r.q.InsertAccount(ctx, generated.InsertAccountParams{
		ID:          id,
		Network:     string(account.Network),
		ExternalID:  account.ExternalID,
		Handle:      account.Handle,
		DisplayName: account.DisplayName,
		AvatarUrl:   account.AvatarURL,
		IsClaimed:   account.IsClaimed,
		IsLocked:    account.IsLocked,
		Balance:     account.Balance,
	})
	if err != nil {
		if isUniqueViolation(err, ConstraintAccountIdentity) {
			return fmt.Errorf("%w: %s/%s", repository.ErrDuplicateIdentity, account.Network, account.ExternalID)
		}
		return storeError(ErrMsgFailedToInsertAccount, err)
	}
	account.CreatedAt = stamps.CreatedAt.Time
	account.UpdatedAt = stamps.UpdatedAt.Time
	return nil
}

// UpdateAccountDisplay refreshes the advisory display fields only
func (r *AccountRepository) UpdateAccountDisplay(ctx context.Context, accountID, handle, displayName, avatarURL string) error {
	id, err := parseAccountUUID(accountID)
	if err != nil {
		return err
	}

	n, err := r.q.UpdateAccountDisplay(ctx, generated.UpdateAccountDisplayParams{
		ID:          id,
		Handle:      handle,
		DisplayName: displayName,
		AvatarUrl:   avatarURL,
	})
	if err != nil {
		return storeError(ErrMsgFailedToUpdateAccount, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
	}
	return nil
}

// CompareAndSetLocked flips is_locked only when the row still matches the
// state the caller observed
func (r *AccountRepository) CompareAndSetLocked(ctx context.Context, accountID string, expected, next bool) (bool, error) {
	id, err := parseAccountUUID(accountID)
	if err != nil {
		return false, err
	}

	n, err := r.q.CompareAndSetLocked(ctx, generated.CompareAndSetLockedParams{
		Next:     next,
		ID:       id,
		Expected: expected,
	})
	if err != nil {
		return false, storeError(ErrMsgFailedToCompareAndSetLock, err)
	}
	return n == 1, nil
}

// MarkClaimed moves an unclaimed account to claimed
func (r *AccountRepository) MarkClaimed(ctx context.Context, accountID string) (bool, error) {
	id, err := parseAccountUUID(accountID)
	if err != nil {
		return false, err
	}

	n, err := r.q.MarkClaimed(ctx, id)
	if err != nil {
		return false, storeError(ErrMsgFailedToMarkClaimed, err)
	}
	return n == 1, nil
}

func mapAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:          row.ID.String(),
		Network:     domain.Network(row.Network),
		ExternalID:  row.ExternalID,
		Handle:      row.Handle,
		DisplayName: row.DisplayName,
		AvatarURL:   row.AvatarUrl,
		IsClaimed:   row.IsClaimed,
		IsLocked:    row.IsLocked,
		Balance:     row.Balance,
		ClaimedAt:   ptrTime(row.ClaimedAt),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
