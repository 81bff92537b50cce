package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing messages for domain errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgProfileNotFound      = "No such profile"
	ErrMsgInvalidProfileError  = "The external profile is missing required fields"
	ErrMsgInvalidNetworkError  = "Unsupported network. Valid options: github, twitter, bitbucket"
	ErrMsgInvalidTransitionErr = "The account can no longer be locked or unlocked"
	ErrMsgAccountNotFoundError = "Account not found"
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."
)

// Log messages
const (
	LogMsgRequestFailed      = "Request failed"
	LogMsgRequestDecodeError = "Failed to decode request"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgClaimRequested     = "Claim requested"
)

// Query and path parameter names
const (
	ParamAccountID = "id"
	ParamNetwork   = "network"
	ParamHandle    = "handle"
	QueryViewerID  = "viewer_id"
	QueryTipperID  = "tipper_id"
)

// ClaimSourceAPI tags claim requests that arrive over HTTP
const ClaimSourceAPI = "api"
