package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/PledgeBoard_Go/internal/database/generated"
	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/repository"
)

// TipRepository implements repository.Tip for PostgreSQL
type TipRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewTipRepository creates a new TipRepository
func NewTipRepository(db *pgxpool.Pool) *TipRepository {
	return &TipRepository{
		db: db,
		q:  generated.New(db),
	}
}

var _ repository.Tip = (*TipRepository)(nil)

// GetActiveTip returns the newest row for the pair, or nil if the pair never
// tipped. An id that is not a UUID cannot own a row, so it reads as nil too.
func (r *TipRepository) GetActiveTip(ctx context.Context, tipperID, tippeeID string) (*domain.Tip, error) {
	tipper, err := uuid.Parse(tipperID)
	if err != nil {
		return nil, nil
	}
	tippee, err := uuid.Parse(tippeeID)
	if err != nil {
		return nil, nil
	}

	row, err := r.q.GetActiveTip(ctx, generated.GetActiveTipParams{
		Tipper: tipper,
		Tippee: tippee,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError(ErrMsgFailedToGetTip, err)
	}
	return mapTip(row), nil
}

// CountBackers counts tippers whose newest tip to tippeeID is positive.
// A malformed tippee id has no backers.
func (r *TipRepository) CountBackers(ctx context.Context, tippeeID string) (int, error) {
	tippee, err := uuid.Parse(tippeeID)
	if err != nil {
		return 0, nil
	}

	count, err := r.q.CountBackers(ctx, tippee)
	if err != nil {
		return 0, storeError(ErrMsgFailedToCountBackers, err)
	}
	return int(count), nil
}

// AppendTip supersedes the pair's active tip with a new row
func (r *TipRepository) AppendTip(ctx context.Context, tipperID, tippeeID string, amount decimal.Decimal) (*domain.Tip, error) {
	tipper, err := parseAccountUUID(tipperID)
	if err != nil {
		return nil, err
	}
	tippee, err := parseAccountUUID(tippeeID)
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%s: negative amount %s", ErrMsgFailedToAppendTip, amount)
	}

	row, err := r.q.AppendTip(ctx, generated.AppendTipParams{
		Tipper: tipper,
		Tippee: tippee,
		Amount: amount,
	})
	if err != nil {
		return nil, storeError(ErrMsgFailedToAppendTip, err)
	}
	return mapTip(row), nil
}

func mapTip(row generated.Tip) *domain.Tip {
	return &domain.Tip{
		Seq:      row.ID,
		TipperID: row.Tipper.String(),
		TippeeID: row.Tippee.String(),
		Amount:   row.Amount,
		CTime:    row.Ctime.Time,
		MTime:    row.Mtime.Time,
	}
}
