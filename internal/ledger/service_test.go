package ledger

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PledgeBoard_Go/internal/database/postgres"
	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/testing/fakes"
)

func tip(t *testing.T, store *fakes.TipStore, tipper, tippee, amount string) {
	t.Helper()
	_, err := store.AppendTip(context.Background(), tipper, tippee, decimal.RequireFromString(amount))
	require.NoError(t, err)
}

func TestBackerCount_LatestTipPerPair(t *testing.T) {
	store := fakes.NewTipStore()
	svc := NewService(store)
	ctx := context.Background()

	tip(t, store, "A", "T", "5")
	tip(t, store, "B", "T", "0")
	tip(t, store, "C", "T", "3")

	n, err := svc.BackerCount(ctx, "T")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// A's newer zero tip supersedes the 5
	tip(t, store, "A", "T", "0")

	n, err = svc.BackerCount(ctx, "T")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.BackerCount(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTipFor(t *testing.T) {
	store := fakes.NewTipStore()
	svc := NewService(store)
	ctx := context.Background()

	tip(t, store, "viewer", "T", "1.00")
	tip(t, store, "viewer", "T", "2.50")
	tip(t, store, "other", "T", "9.00")

	tests := []struct {
		name   string
		tipper string
		want   string
	}{
		{"latest row wins", "viewer", "2.50"},
		{"anonymous viewer", "", "0"},
		{"never tipped", "stranger", "0"},
		{"self", "T", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.TipFor(ctx, tt.tipper, "T")
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestTipFor_AnonymousNeverTouchesStore(t *testing.T) {
	store := fakes.NewTipStore()
	store.Err = fmt.Errorf("down: %w", domain.ErrUnavailable)

	got, err := NewService(store).TipFor(context.Background(), "", "T")
	require.NoError(t, err)
	assert.True(t, got.Equal(NoTip))
}

func TestStoreFailuresPropagate(t *testing.T) {
	store := fakes.NewTipStore()
	store.Err = fmt.Errorf("down: %w", domain.ErrUnavailable)
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.TipFor(ctx, "viewer", "T")
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	_, err = svc.BackerCount(ctx, "T")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestTipDetail_CarriesCTime(t *testing.T) {
	store := fakes.NewTipStore()
	svc := NewService(store)
	ctx := context.Background()

	tip(t, store, "viewer", "T", "1")
	first, err := svc.TipDetail(ctx, "viewer", "T")
	require.NoError(t, err)
	tip(t, store, "viewer", "T", "4")
	second, err := svc.TipDetail(ctx, "viewer", "T")
	require.NoError(t, err)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Greater(t, second.Seq, first.Seq)
	assert.Equal(t, first.CTime, second.CTime)

	none, err := svc.TipDetail(ctx, "", "T")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestMalformedIDsOverPostgresStore(t *testing.T) {
	// nil pool: a malformed id must be answered before any query
	svc := NewService(postgres.NewTipRepository(nil))
	ctx := context.Background()

	amount, err := svc.TipFor(ctx, "anonymous-session-42", uuid.NewString())
	require.NoError(t, err)
	assert.True(t, amount.Equal(NoTip))

	detail, err := svc.TipDetail(ctx, uuid.NewString(), "garbage")
	require.NoError(t, err)
	assert.Nil(t, detail)

	n, err := svc.BackerCount(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Zero(t, n)
}
