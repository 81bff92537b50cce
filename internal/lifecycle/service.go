// Package lifecycle owns the claim and lock state machine of an account.
//
//	unclaimed-unlocked --lock--> unclaimed-locked --unlock--> unclaimed-unlocked
//	      any unclaimed --claim (external)--> claimed
//
// claimed is terminal here: lock and unlock fail, claim is a no-op.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/event"
	"github.com/osse101/PledgeBoard_Go/internal/logger"
	"github.com/osse101/PledgeBoard_Go/internal/metrics"
	"github.com/osse101/PledgeBoard_Go/internal/repository"
)

// CurrentState derives the state from the stored flags.
// is_claimed wins over whatever is_locked holds.
func CurrentState(account domain.Account) domain.State {
	return stateOf(account.IsClaimed, account.IsLocked)
}

func stateOf(claimed, locked bool) domain.State {
	switch {
	case claimed:
		return domain.StateClaimed
	case locked:
		return domain.StateUnclaimedLocked
	default:
		return domain.StateUnclaimedUnlocked
	}
}

// Service applies lifecycle transitions
type Service interface {
	// Lock opts an unclaimed account out of new pledges
	Lock(ctx context.Context, accountID string) (domain.State, error)
	Unlock(ctx context.Context, accountID string) (domain.State, error)

	// Claim marks the account claimed; it is driven by the linking flow, never by page actions
	Claim(ctx context.Context, accountID string) (domain.State, error)

	// Register subscribes the service to claim requests on bus
	Register(bus event.Bus)
}

type service struct {
	repo repository.Account
	bus  event.Bus
}

// NewService creates a new lifecycle service. bus may be nil.
func NewService(repo repository.Account, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) Lock(ctx context.Context, accountID string) (domain.State, error) {
	return s.setLocked(ctx, accountID, ActionLock, true)
}

func (s *service) Unlock(ctx context.Context, accountID string) (domain.State, error) {
	return s.setLocked(ctx, accountID, ActionUnlock, false)
}

// setLocked reads the account, decides, then compare-and-swaps is_locked.
// A lost swap means someone else moved the account; re-read and decide again.
func (s *service) setLocked(ctx context.Context, accountID, action string, locked bool) (domain.State, error) {
	log := logger.FromContext(ctx).With("account_id", accountID, "action", action)

	for attempt := 1; attempt <= MaxTransitionAttempts; attempt++ {
		account, err := s.repo.GetAccountByID(ctx, accountID)
		if err != nil {
			metrics.LockTransitions.WithLabelValues(action, metrics.ResultError).Inc()
			return "", fmt.Errorf("%s: %w", ErrMsgFailedToLoad, err)
		}

		from := CurrentState(*account)
		if from == domain.StateClaimed {
			metrics.LockTransitions.WithLabelValues(action, metrics.ResultRefused).Inc()
			log.Info(LogMsgTransitionRefused)
			return from, fmt.Errorf("%w: %s: cannot %s", domain.ErrInvalidTransition, ErrMsgClaimedAccount, action)
		}
		if account.IsLocked == locked {
			metrics.LockTransitions.WithLabelValues(action, metrics.ResultNoop).Inc()
			log.Debug(LogMsgTransitionNoop, "state", from)
			return from, nil
		}

		swapped, err := s.repo.CompareAndSetLocked(ctx, accountID, !locked, locked)
		if err != nil {
			metrics.LockTransitions.WithLabelValues(action, metrics.ResultError).Inc()
			log.Error(LogErrTransitionFailed, "error", err)
			return "", fmt.Errorf("%s: %w", ErrMsgFailedToUpdate, err)
		}
		if swapped {
			to := stateOf(false, locked)
			metrics.LockTransitions.WithLabelValues(action, metrics.ResultApplied).Inc()
			log.Info(LogMsgTransitionApplied, "from", from, "to", to)

			eventType := event.AccountUnlocked
			if locked {
				eventType = event.AccountLocked
			}
			s.publish(ctx, event.NewAccountStateEvent(eventType, accountID, from, to))
			return to, nil
		}

		log.Debug(LogMsgCASLost, "attempt", attempt)
	}

	metrics.LockTransitions.WithLabelValues(action, metrics.ResultError).Inc()
	return "", fmt.Errorf("%w: %s", domain.ErrUnavailable, ErrMsgContended)
}

// Claim is idempotent: claiming a claimed account returns StateClaimed without error
func (s *service) Claim(ctx context.Context, accountID string) (domain.State, error) {
	log := logger.FromContext(ctx).With("account_id", accountID)

	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToLoad, err)
	}
	from := CurrentState(*account)
	if from == domain.StateClaimed {
		log.Debug(LogMsgAlreadyClaimed)
		return from, nil
	}

	claimed, err := s.repo.MarkClaimed(ctx, accountID)
	if err != nil {
		log.Error(LogErrClaimFailed, "error", err)
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToClaim, err)
	}
	if !claimed {
		// A concurrent claim got there first
		log.Debug(LogMsgAlreadyClaimed)
		return domain.StateClaimed, nil
	}

	log.Info(LogMsgAccountClaimed, "from", from)
	s.publish(ctx, event.NewAccountStateEvent(event.AccountClaimed, accountID, from, domain.StateClaimed))
	return domain.StateClaimed, nil
}

func (s *service) Register(bus event.Bus) {
	bus.Subscribe(event.AccountClaimRequested, s.handleClaimRequested)
}

func (s *service) handleClaimRequested(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ClaimRequestedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBadClaimPayload, err)
	}
	_, err = s.Claim(ctx, payload.AccountID)
	return err
}

// publish is best effort; the transition is already committed
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
