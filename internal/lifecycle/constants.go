package lifecycle

// MaxTransitionAttempts bounds how often a lock or unlock re-reads the account
// after losing a compare-and-swap
const MaxTransitionAttempts = 3

// Actions, also used as metric labels
const (
	ActionLock   = "lock"
	ActionUnlock = "unlock"
	ActionClaim  = "claim"
)

// Log messages
const (
	LogMsgTransitionApplied = "Account lock state changed"
	LogMsgTransitionNoop    = "Account already in requested lock state"
	LogMsgTransitionRefused = "Lock change refused on claimed account"
	LogMsgCASLost           = "Account changed concurrently, re-evaluating"
	LogMsgAccountClaimed    = "Account claimed"
	LogMsgAlreadyClaimed    = "Account already claimed"
	LogMsgPublishFailed     = "Failed to publish account event"
	LogErrTransitionFailed  = "Lock change failed"
	LogErrClaimFailed       = "Claim failed"
)

// Error messages
const (
	ErrMsgClaimedAccount  = "account is claimed"
	ErrMsgContended       = "account kept changing during transition"
	ErrMsgFailedToLoad    = "failed to load account"
	ErrMsgFailedToUpdate  = "failed to update lock state"
	ErrMsgFailedToClaim   = "failed to claim account"
	ErrMsgBadClaimPayload = "invalid claim request payload"
)
