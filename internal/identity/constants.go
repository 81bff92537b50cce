package identity

// Log messages
const (
	LogMsgAccountCreated      = "Account created"
	LogMsgAccountRefreshed    = "Account display fields refreshed"
	LogMsgAccountUnchanged    = "Account resolved, display fields unchanged"
	LogMsgIdentityConflict    = "Concurrent resolution won by another request, re-fetching"
	LogMsgPublishFailed       = "Failed to publish account event"
	LogErrFailedToResolve     = "Failed to resolve account"
	LogErrFailedToFetchHandle = "Profile lookup failed"
)

// Error messages
const (
	ErrMsgFailedToGetAccount     = "failed to get account"
	ErrMsgFailedToCreateAccount  = "failed to create account"
	ErrMsgFailedToRefetchAccount = "failed to re-fetch account after identity conflict"
	ErrMsgFailedToRefreshAccount = "failed to refresh account display fields"
)
