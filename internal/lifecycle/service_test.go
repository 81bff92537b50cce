package lifecycle

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/event"
	"github.com/osse101/PledgeBoard_Go/internal/testing/fakes"
)

func seed(store *fakes.AccountStore, id string, claimed, locked bool) {
	store.Put(domain.Account{
		ID:         id,
		Network:    domain.NetworkGitHub,
		ExternalID: "ext-" + id,
		Handle:     id,
		IsClaimed:  claimed,
		IsLocked:   locked,
		Balance:    decimal.Zero,
	})
}

func TestCurrentState(t *testing.T) {
	tests := []struct {
		claimed, locked bool
		want            domain.State
	}{
		{false, false, domain.StateUnclaimedUnlocked},
		{false, true, domain.StateUnclaimedLocked},
		{true, false, domain.StateClaimed},
		{true, true, domain.StateClaimed},
	}
	for _, tt := range tests {
		got := CurrentState(domain.Account{IsClaimed: tt.claimed, IsLocked: tt.locked})
		assert.Equal(t, tt.want, got, "claimed=%v locked=%v", tt.claimed, tt.locked)
	}
}

func TestLockUnlock(t *testing.T) {
	store := fakes.NewAccountStore()
	seed(store, "alice", false, false)
	svc := NewService(store, nil)
	ctx := context.Background()

	state, err := svc.Lock(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StateUnclaimedLocked, state)

	state, err = svc.Lock(ctx, "alice")
	require.NoError(t, err, "second lock is a no-op")
	assert.Equal(t, domain.StateUnclaimedLocked, state)
	assert.Equal(t, 1, store.CASAttempts, "no-op never writes")

	state, err = svc.Unlock(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StateUnclaimedUnlocked, state)

	state, err = svc.Unlock(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StateUnclaimedUnlocked, state)

	stored, err := store.GetAccountByID(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, stored.IsLocked)
}

func TestLockUnlock_ClaimedAccountRefused(t *testing.T) {
	store := fakes.NewAccountStore()
	// A stale is_locked on a claimed row must not matter
	seed(store, "claimed-locked", true, true)
	seed(store, "claimed-unlocked", true, false)
	svc := NewService(store, nil)
	ctx := context.Background()

	for _, id := range []string{"claimed-locked", "claimed-unlocked"} {
		state, err := svc.Lock(ctx, id)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, domain.StateClaimed, state)

		state, err = svc.Unlock(ctx, id)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, domain.StateClaimed, state)
	}
	assert.Zero(t, store.CASAttempts)
}

func TestLock_UnknownAccount(t *testing.T) {
	_, err := NewService(fakes.NewAccountStore(), nil).Lock(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLock_ClaimedWhileDeciding(t *testing.T) {
	store := fakes.NewAccountStore()
	seed(store, "alice", false, false)
	store.BeforeCAS = func(id string) {
		// The linking flow claims the account between our read and our write
		store.BeforeCAS = nil
		_, _ = store.MarkClaimed(context.Background(), id)
	}
	svc := NewService(store, nil)

	state, err := svc.Lock(context.Background(), "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "re-read sees the claim")
	assert.Equal(t, domain.StateClaimed, state)
	assert.Equal(t, 1, store.CASAttempts)
}

func TestLock_LockedByOtherRequestIsNoop(t *testing.T) {
	store := fakes.NewAccountStore()
	seed(store, "alice", false, false)
	store.BeforeCAS = func(id string) {
		store.BeforeCAS = nil
		_, _ = store.CompareAndSetLocked(context.Background(), id, false, true)
	}
	svc := NewService(store, nil)

	state, err := svc.Lock(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StateUnclaimedLocked, state)
}

// alwaysStale loses every compare-and-swap while reads keep looking unchanged
type alwaysStale struct {
	*fakes.AccountStore
	attempts int
}

func (a *alwaysStale) CompareAndSetLocked(ctx context.Context, accountID string, expected, next bool) (bool, error) {
	a.attempts++
	return false, nil
}

func TestLock_ContentionIsBounded(t *testing.T) {
	store := fakes.NewAccountStore()
	seed(store, "alice", false, false)
	repo := &alwaysStale{AccountStore: store}

	_, err := NewService(repo, nil).Lock(context.Background(), "alice")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, MaxTransitionAttempts, repo.attempts)
}

func TestClaim(t *testing.T) {
	store := fakes.NewAccountStore()
	seed(store, "alice", false, true)
	bus := event.NewMemoryBus()
	var claimed []event.AccountStatePayloadV1
	bus.Subscribe(event.AccountClaimed, func(ctx context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.AccountStatePayloadV1](evt.Payload)
		claimed = append(claimed, p)
		return err
	})
	svc := NewService(store, bus)
	ctx := context.Background()

	state, err := svc.Claim(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StateClaimed, state)

	state, err = svc.Claim(ctx, "alice")
	require.NoError(t, err, "claim is idempotent")
	assert.Equal(t, domain.StateClaimed, state)

	require.Len(t, claimed, 1)
	assert.Equal(t, domain.StateUnclaimedLocked, claimed[0].From)

	_, err = svc.Lock(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = svc.Unlock(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRegister_ClaimRequestedDrivesClaim(t *testing.T) {
	store := fakes.NewAccountStore()
	seed(store, "alice", false, false)
	bus := event.NewMemoryBus()
	NewService(store, bus).Register(bus)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewClaimRequestedEvent("alice", "test")))

	acct, err := store.GetAccountByID(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, acct.IsClaimed)

	err = bus.Publish(ctx, event.NewClaimRequestedEvent("ghost", "test"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLockEvents(t *testing.T) {
	store := fakes.NewAccountStore()
	seed(store, "alice", false, false)
	bus := event.NewMemoryBus()
	var types []event.Type
	for _, et := range []event.Type{event.AccountLocked, event.AccountUnlocked} {
		bus.Subscribe(et, func(ctx context.Context, evt event.Event) error {
			types = append(types, evt.Type)
			return nil
		})
	}
	svc := NewService(store, bus)
	ctx := context.Background()

	_, _ = svc.Lock(ctx, "alice")
	_, _ = svc.Lock(ctx, "alice")
	_, _ = svc.Unlock(ctx, "alice")

	assert.Equal(t, []event.Type{event.AccountLocked, event.AccountUnlocked}, types, "no-ops publish nothing")
}
