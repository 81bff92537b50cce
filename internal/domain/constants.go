package domain

// State is an account's position in the claim/lock lifecycle
type State string

// Account states as reported by the lifecycle state machine
const (
	StateUnclaimedUnlocked State = "unclaimed-unlocked"
	StateUnclaimedLocked   State = "unclaimed-locked"
	StateClaimed           State = "claimed"
)

// Canonical path for a claimed account page
const (
	AccountPathFormat = "/accounts/%s"
)

// Event types exchanged on the in-process bus
const (
	EventTypeAccountResolved       = "account.resolved"
	EventTypeAccountLocked         = "account.locked"
	EventTypeAccountUnlocked       = "account.unlocked"
	EventTypeAccountClaimed        = "account.claimed"
	EventTypeAccountClaimRequested = "account.claim_requested"
)
