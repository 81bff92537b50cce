// Package fakes holds stateful in-memory repositories for service and handler tests.
package fakes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/repository"
)

// AccountStore is an in-memory repository.Account that enforces the
// (network, external_id) uniqueness the real table does.
type AccountStore struct {
	mu         sync.Mutex
	byID       map[string]*domain.Account
	byIdentity map[string]string

	// Err, when set, is returned from every call
	Err error

	// BeforeInsert runs before InsertAccount takes the lock; tests use it to
	// slip a competing row in ahead of the caller.
	BeforeInsert func(account *domain.Account)

	// BeforeCAS runs before CompareAndSetLocked takes the lock
	BeforeCAS func(accountID string)

	Inserts        int
	DisplayUpdates int
	CASAttempts    int
}

var _ repository.Account = (*AccountStore)(nil)

// NewAccountStore creates an empty store
func NewAccountStore() *AccountStore {
	return &AccountStore{
		byID:       make(map[string]*domain.Account),
		byIdentity: make(map[string]string),
	}
}

func identityKey(network domain.Network, externalID string) string {
	return string(network) + ":" + externalID
}

// Put stores account as-is, bypassing the uniqueness check
func (s *AccountStore) Put(account domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := account
	s.byID[account.ID] = &copied
	s.byIdentity[identityKey(account.Network, account.ExternalID)] = account.ID
}

// Count returns the number of stored accounts
func (s *AccountStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *AccountStore) GetAccountByIdentity(ctx context.Context, network domain.Network, externalID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	id, ok := s.byIdentity[identityKey(network, externalID)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrAccountNotFound, network, externalID)
	}
	copied := *s.byID[id]
	return &copied, nil
}

func (s *AccountStore) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	acct, ok := s.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
	}
	copied := *acct
	return &copied, nil
}

func (s *AccountStore) InsertAccount(ctx context.Context, account *domain.Account) error {
	if s.BeforeInsert != nil {
		s.BeforeInsert(account)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	key := identityKey(account.Network, account.ExternalID)
	if _, taken := s.byIdentity[key]; taken {
		return fmt.Errorf("%w: %s", repository.ErrDuplicateIdentity, key)
	}

	now := time.Now()
	account.CreatedAt, account.UpdatedAt = now, now
	copied := *account
	s.byID[account.ID] = &copied
	s.byIdentity[key] = account.ID
	s.Inserts++
	return nil
}

func (s *AccountStore) UpdateAccountDisplay(ctx context.Context, accountID, handle, displayName, avatarURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	acct, ok := s.byID[accountID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
	}
	acct.Handle, acct.DisplayName, acct.AvatarURL = handle, displayName, avatarURL
	acct.UpdatedAt = time.Now()
	s.DisplayUpdates++
	return nil
}

func (s *AccountStore) CompareAndSetLocked(ctx context.Context, accountID string, expected, next bool) (bool, error) {
	if s.BeforeCAS != nil {
		s.BeforeCAS(accountID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	s.CASAttempts++
	acct, ok := s.byID[accountID]
	if !ok || acct.IsClaimed || acct.IsLocked != expected {
		return false, nil
	}
	acct.IsLocked = next
	return true, nil
}

func (s *AccountStore) MarkClaimed(ctx context.Context, accountID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	acct, ok := s.byID[accountID]
	if !ok || acct.IsClaimed {
		return false, nil
	}
	now := time.Now()
	acct.IsClaimed = true
	acct.ClaimedAt = &now
	return true, nil
}

// TipStore is an in-memory repository.Tip. Seq is assigned from a counter
// so "latest" never depends on wall-clock time.
type TipStore struct {
	mu   sync.Mutex
	seq  int64
	rows []domain.Tip

	// Err, when set, is returned from every call
	Err error
}

var _ repository.Tip = (*TipStore)(nil)

// NewTipStore creates an empty store
func NewTipStore() *TipStore {
	return &TipStore{}
}

func (s *TipStore) latest(tipperID, tippeeID string) *domain.Tip {
	for i := len(s.rows) - 1; i >= 0; i-- {
		if s.rows[i].TipperID == tipperID && s.rows[i].TippeeID == tippeeID {
			return &s.rows[i]
		}
	}
	return nil
}

func (s *TipStore) GetActiveTip(ctx context.Context, tipperID, tippeeID string) (*domain.Tip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if tip := s.latest(tipperID, tippeeID); tip != nil {
		copied := *tip
		return &copied, nil
	}
	return nil, nil
}

func (s *TipStore) CountBackers(ctx context.Context, tippeeID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	latest := make(map[string]domain.Tip)
	for _, row := range s.rows {
		if row.TippeeID != tippeeID {
			continue
		}
		if prev, ok := latest[row.TipperID]; !ok || row.Seq > prev.Seq {
			latest[row.TipperID] = row
		}
	}

	count := 0
	for _, tip := range latest {
		if tip.Active() {
			count++
		}
	}
	return count, nil
}

func (s *TipStore) AppendTip(ctx context.Context, tipperID, tippeeID string, amount decimal.Decimal) (*domain.Tip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if tipperID == tippeeID {
		return nil, fmt.Errorf("tipper and tippee must differ")
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("negative amount %s", amount)
	}

	now := time.Now()
	ctime := now
	if prev := s.latest(tipperID, tippeeID); prev != nil {
		ctime = prev.CTime
	}

	s.seq++
	tip := domain.Tip{Seq: s.seq, TipperID: tipperID, TippeeID: tippeeID, Amount: amount, CTime: ctime, MTime: now}
	s.rows = append(s.rows, tip)
	return &tip, nil
}
