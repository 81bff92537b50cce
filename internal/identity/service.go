package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/event"
	"github.com/osse101/PledgeBoard_Go/internal/logger"
	"github.com/osse101/PledgeBoard_Go/internal/metrics"
	"github.com/osse101/PledgeBoard_Go/internal/repository"
)

// ProfileFetcher looks up a handle on an external network
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, network domain.Network, handle string) (domain.Profile, error)
}

// Service resolves external identities to accounts
type Service interface {
	// Resolve finds or creates the account for (network, profile.ExternalID).
	// created is true only for the call whose insert won.
	Resolve(ctx context.Context, network domain.Network, profile domain.Profile) (account *domain.Account, created bool, err error)

	// ResolveHandle fetches the handle's profile and resolves it
	ResolveHandle(ctx context.Context, network domain.Network, handle string) (account *domain.Account, created bool, err error)

	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

type service struct {
	repo    repository.Account
	fetcher ProfileFetcher
	bus     event.Bus
	newID   func() string
}

// NewService creates a new identity service. fetcher and bus may be nil.
func NewService(repo repository.Account, fetcher ProfileFetcher, bus event.Bus) Service {
	return &service{
		repo:    repo,
		fetcher: fetcher,
		bus:     bus,
		newID:   uuid.NewString,
	}
}

// Resolve finds or creates the account. There is no lock: the store's unique
// constraint arbitrates, and the loser of a race re-reads the winner's row.
func (s *service) Resolve(ctx context.Context, network domain.Network, profile domain.Profile) (*domain.Account, bool, error) {
	log := logger.FromContext(ctx)

	if !network.Valid() {
		return nil, false, fmt.Errorf("%w: %q", domain.ErrInvalidNetwork, network)
	}
	p := profile.Normalize()
	if err := p.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetAccountByIdentity(ctx, network, p.ExternalID)
	if err == nil {
		return s.refresh(ctx, existing, p, metrics.OutcomeExisting)
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, false, s.fail(ctx, network, p, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err))
	}

	candidate := domain.NewAccount(s.newID(), network, p)
	err = s.repo.InsertAccount(ctx, &candidate)
	switch {
	case err == nil:
		metrics.AccountsResolved.WithLabelValues(network.String(), metrics.OutcomeCreated).Inc()
		log.Info(LogMsgAccountCreated, "account_id", candidate.ID, "network", network, "handle", candidate.Handle)
		s.publish(ctx, event.NewAccountResolvedEvent(candidate, true))
		return &candidate, true, nil

	case errors.Is(err, repository.ErrDuplicateIdentity):
		log.Debug(LogMsgIdentityConflict, "network", network, "external_id", p.ExternalID)
		winner, err := s.repo.GetAccountByIdentity(ctx, network, p.ExternalID)
		if err != nil {
			return nil, false, s.fail(ctx, network, p, fmt.Errorf("%s: %w", ErrMsgFailedToRefetchAccount, err))
		}
		return s.refresh(ctx, winner, p, metrics.OutcomeConflict)

	default:
		return nil, false, s.fail(ctx, network, p, fmt.Errorf("%s: %w", ErrMsgFailedToCreateAccount, err))
	}
}

// refresh copies the advisory display fields onto an existing account.
// Identity, claim, lock and balance fields are never written here.
func (s *service) refresh(ctx context.Context, account *domain.Account, p domain.Profile, outcome string) (*domain.Account, bool, error) {
	log := logger.FromContext(ctx)

	updated := *account
	if updated.ApplyProfile(p) {
		if err := s.repo.UpdateAccountDisplay(ctx, updated.ID, updated.Handle, updated.DisplayName, updated.AvatarURL); err != nil {
			return nil, false, s.fail(ctx, account.Network, p, fmt.Errorf("%s: %w", ErrMsgFailedToRefreshAccount, err))
		}
		log.Info(LogMsgAccountRefreshed, "account_id", updated.ID, "network", updated.Network, "handle", updated.Handle)
	} else {
		log.Debug(LogMsgAccountUnchanged, "account_id", updated.ID, "network", updated.Network, "handle", updated.Handle)
	}

	metrics.AccountsResolved.WithLabelValues(updated.Network.String(), outcome).Inc()
	s.publish(ctx, event.NewAccountResolvedEvent(updated, false))
	return &updated, false, nil
}

func (s *service) fail(ctx context.Context, network domain.Network, p domain.Profile, err error) error {
	metrics.AccountsResolved.WithLabelValues(network.String(), metrics.OutcomeError).Inc()
	logger.FromContext(ctx).Error(LogErrFailedToResolve, "error", err, "network", network, "handle", p.Handle)
	return err
}

// publish is best effort; resolution already succeeded in the store
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// ResolveHandle runs the external lookup then Resolve
func (s *service) ResolveHandle(ctx context.Context, network domain.Network, handle string) (*domain.Account, bool, error) {
	if !network.Valid() {
		return nil, false, fmt.Errorf("%w: %q", domain.ErrInvalidNetwork, network)
	}
	if s.fetcher == nil {
		return nil, false, fmt.Errorf("%w: no profile fetcher configured", domain.ErrNotFound)
	}

	profile, err := s.fetcher.FetchProfile(ctx, network, handle)
	if err != nil {
		logger.FromContext(ctx).Debug(LogErrFailedToFetchHandle, "network", network, "handle", handle, "error", err)
		return nil, false, err
	}
	return s.Resolve(ctx, network, profile)
}

// GetAccount loads an account by internal ID
func (s *service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}
