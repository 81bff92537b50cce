// Package ledger answers read-only questions about the tip history.
package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/repository"
)

// NoTip is what TipFor reports when the viewer has no active tip
var NoTip = decimal.Zero

// Service queries tips
type Service interface {
	// TipFor returns the viewer's active tip to tippeeID.
	// An empty tipperID is an anonymous viewer and always yields NoTip.
	TipFor(ctx context.Context, tipperID, tippeeID string) (decimal.Decimal, error)

	// TipDetail returns the active row, or nil when there is none
	TipDetail(ctx context.Context, tipperID, tippeeID string) (*domain.Tip, error)

	// BackerCount counts tippers whose latest tip to tippeeID is positive
	BackerCount(ctx context.Context, tippeeID string) (int, error)
}

type service struct {
	repo repository.Tip
}

// NewService creates a new ledger service
func NewService(repo repository.Tip) Service {
	return &service{repo: repo}
}

func (s *service) TipFor(ctx context.Context, tipperID, tippeeID string) (decimal.Decimal, error) {
	tip, err := s.TipDetail(ctx, tipperID, tippeeID)
	if err != nil {
		return NoTip, err
	}
	if tip == nil {
		return NoTip, nil
	}
	return tip.Amount, nil
}

func (s *service) TipDetail(ctx context.Context, tipperID, tippeeID string) (*domain.Tip, error) {
	if tipperID == "" || tipperID == tippeeID {
		return nil, nil
	}
	tip, err := s.repo.GetActiveTip(ctx, tipperID, tippeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tip: %w", err)
	}
	return tip, nil
}

func (s *service) BackerCount(ctx context.Context, tippeeID string) (int, error) {
	n, err := s.repo.CountBackers(ctx, tippeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count backers: %w", err)
	}
	return n, nil
}
