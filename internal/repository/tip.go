package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
)

// Tip defines read access to the tip history plus the append used by the
// external tipping flow
type Tip interface {
	// GetActiveTip returns the latest row for the pair, or nil when there is none
	GetActiveTip(ctx context.Context, tipperID, tippeeID string) (*domain.Tip, error)

	// CountBackers counts tippers whose latest tip to tippeeID is positive
	CountBackers(ctx context.Context, tippeeID string) (int, error)

	AppendTip(ctx context.Context, tipperID, tippeeID string, amount decimal.Decimal) (*domain.Tip, error)
}
