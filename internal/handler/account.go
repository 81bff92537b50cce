package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/event"
	"github.com/osse101/PledgeBoard_Go/internal/identity"
	"github.com/osse101/PledgeBoard_Go/internal/ledger"
	"github.com/osse101/PledgeBoard_Go/internal/lifecycle"
	"github.com/osse101/PledgeBoard_Go/internal/logger"
	"github.com/osse101/PledgeBoard_Go/internal/profile"
)

// AccountHandler serves the account endpoints
type AccountHandler struct {
	identity  identity.Service
	lifecycle lifecycle.Service
	ledger    ledger.Service
	bus       event.Bus
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(identitySvc identity.Service, lifecycleSvc lifecycle.Service, ledgerSvc ledger.Service, bus event.Bus) *AccountHandler {
	return &AccountHandler{
		identity:  identitySvc,
		lifecycle: lifecycleSvc,
		ledger:    ledgerSvc,
		bus:       bus,
	}
}

// ResolveRequest carries a profile the caller already fetched.
// Empty identity fields are reported by the resolver as an invalid profile.
type ResolveRequest struct {
	Network     string `json:"network" validate:"required,network"`
	ExternalID  string `json:"external_id" validate:"max=128"`
	Handle      string `json:"handle" validate:"max=128"`
	DisplayName string `json:"display_name" validate:"max=256"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url,max=2048"`
}

// AccountResponse is an account with its derived lifecycle state
type AccountResponse struct {
	Account *domain.Account `json:"account"`
	State   domain.State    `json:"state"`
	Created bool            `json:"created,omitempty"`
}

// StateResponse reports the state after a lifecycle action
type StateResponse struct {
	AccountID string       `json:"account_id"`
	State     domain.State `json:"state"`
}

// TipResponse is the viewer's active tip
type TipResponse struct {
	TipperID string          `json:"tipper_id,omitempty"`
	TippeeID string          `json:"tippee_id"`
	Amount   decimal.Decimal `json:"amount"`
	Tip      *domain.Tip     `json:"tip,omitempty"`
}

// BackersResponse is the backer count with its display phrase
type BackersResponse struct {
	AccountID string `json:"account_id"`
	Count     int    `json:"count"`
	Phrase    string `json:"phrase"`
}

func newAccountResponse(account *domain.Account, created bool) AccountResponse {
	return AccountResponse{Account: account, State: lifecycle.CurrentState(*account), Created: created}
}

// HandleResolve resolves a supplied profile to an account
// @Summary Resolve an external identity
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Profile"
// @Success 200 {object} AccountResponse
// @Success 201 {object} AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/accounts/resolve [post]
func (h *AccountHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Resolve account"); err != nil {
		return
	}

	network, err := domain.ParseNetwork(req.Network)
	if err != nil {
		respondServiceError(w, r, "Resolve account", err)
		return
	}

	account, created, err := h.identity.Resolve(r.Context(), network, domain.Profile{
		ExternalID:  req.ExternalID,
		Handle:      req.Handle,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		respondServiceError(w, r, "Resolve account", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, newAccountResponse(account, created))
}

// HandleGetAccount returns an account and its state
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id} [get]
func (h *AccountHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	account, err := h.identity.GetAccount(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get account", err)
		return
	}
	respondJSON(w, http.StatusOK, newAccountResponse(account, false))
}

// HandleLock locks an unclaimed account
// @Summary Lock an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} StateResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/lock [post]
func (h *AccountHandler) HandleLock(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Lock account", h.lifecycle.Lock)
}

// HandleUnlock unlocks an unclaimed account
// @Summary Unlock an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} StateResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/unlock [post]
func (h *AccountHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Unlock account", h.lifecycle.Unlock)
}

func (h *AccountHandler) transition(w http.ResponseWriter, r *http.Request, action string, apply func(ctx context.Context, id string) (domain.State, error)) {
	id, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	state, err := apply(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, action, err)
		return
	}
	respondJSON(w, http.StatusOK, StateResponse{AccountID: id, State: state})
}

// HandleClaim publishes a claim request for the account. The in-process bus
// delivers it synchronously, so the response reflects the outcome.
// @Summary Request an account claim
// @Description Called by the identity-linking flow once the owner has authenticated
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} StateResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/claim [post]
func (h *AccountHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	ctx := r.Context()

	if err := h.bus.Publish(ctx, event.NewClaimRequestedEvent(id, ClaimSourceAPI)); err != nil {
		respondServiceError(w, r, "Claim account", err)
		return
	}

	account, err := h.identity.GetAccount(ctx, id)
	if err != nil {
		respondServiceError(w, r, "Claim account", err)
		return
	}
	state := lifecycle.CurrentState(*account)
	logger.FromContext(ctx).Info(LogMsgClaimRequested, "account_id", id, "state", state)
	respondJSON(w, http.StatusOK, StateResponse{AccountID: id, State: state})
}

// HandleGetTip returns the tipper's active tip to the account
// @Summary Viewer tip
// @Tags tips
// @Produce json
// @Param id path string true "Tippee account ID"
// @Param tipper_id query string false "Viewer account ID"
// @Success 200 {object} TipResponse
// @Router /api/v1/accounts/{id}/tips [get]
func (h *AccountHandler) HandleGetTip(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	tipperID := GetOptionalQueryParam(r, QueryTipperID, "")

	tip, err := h.ledger.TipDetail(r.Context(), tipperID, id)
	if err != nil {
		respondServiceError(w, r, "Get tip", err)
		return
	}

	resp := TipResponse{TipperID: tipperID, TippeeID: id, Amount: ledger.NoTip, Tip: tip}
	if tip != nil {
		resp.Amount = tip.Amount
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleGetBackers returns the account's backer count
// @Summary Backer count
// @Tags tips
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} BackersResponse
// @Router /api/v1/accounts/{id}/backers [get]
func (h *AccountHandler) HandleGetBackers(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	count, err := h.ledger.BackerCount(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Count backers", err)
		return
	}
	respondJSON(w, http.StatusOK, BackersResponse{AccountID: id, Count: count, Phrase: profile.BackerPhrase(count)})
}
