// Package profile assembles the view model for an external profile page.
package profile

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/identity"
	"github.com/osse101/PledgeBoard_Go/internal/ledger"
	"github.com/osse101/PledgeBoard_Go/internal/lifecycle"
	"github.com/osse101/PledgeBoard_Go/internal/logger"
)

// View is everything a renderer needs for one profile page
type View struct {
	Account *domain.Account `json:"account"`
	State   domain.State    `json:"state"`
	Created bool            `json:"created"`

	// Redirect is set for claimed accounts; nothing below it is filled in
	Redirect string `json:"redirect,omitempty"`

	Controls     *Controls       `json:"controls,omitempty"`
	ViewerTip    decimal.Decimal `json:"viewer_tip"`
	BackerCount  int             `json:"backer_count"`
	BackerPhrase string          `json:"backer_phrase"`
}

// Controls lists the lifecycle actions the page may offer
type Controls struct {
	CanLock   bool `json:"can_lock"`
	CanUnlock bool `json:"can_unlock"`
}

// Service builds profile views
type Service interface {
	// View resolves network/handle and gathers its state and tips.
	// viewerID may be empty for an anonymous viewer.
	View(ctx context.Context, network domain.Network, handle, viewerID string) (*View, error)
}

type service struct {
	identity identity.Service
	ledger   ledger.Service
}

// NewService creates a new profile service
func NewService(identitySvc identity.Service, ledgerSvc ledger.Service) Service {
	return &service{identity: identitySvc, ledger: ledgerSvc}
}

func (s *service) View(ctx context.Context, network domain.Network, handle, viewerID string) (*View, error) {
	account, created, err := s.identity.ResolveHandle(ctx, network, handle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResolve, err)
	}
	log := logger.FromContext(ctx).With("account_id", account.ID, "network", network, "handle", account.Handle)

	view := &View{
		Account: account,
		State:   lifecycle.CurrentState(*account),
		Created: created,
	}
	if view.State == domain.StateClaimed {
		view.Redirect = fmt.Sprintf(domain.AccountPathFormat, account.ID)
		log.Debug(LogMsgViewRedirect, "redirect", view.Redirect)
		return view, nil
	}

	view.Controls = &Controls{
		CanLock:   view.State == domain.StateUnclaimedUnlocked,
		CanUnlock: view.State == domain.StateUnclaimedLocked,
	}

	// ledger answers NoTip for an anonymous viewer without touching the store
	tip, err := s.ledger.TipFor(ctx, viewerID, account.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedTipFor, err)
	}
	view.ViewerTip = tip

	count, err := s.ledger.BackerCount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBackers, err)
	}
	view.BackerCount = count
	view.BackerPhrase = BackerPhrase(count)

	log.Debug(LogMsgViewAssembled, "state", view.State, "backers", count)
	return view, nil
}
