package profile

// Backer phrasing
const (
	PhraseNoBackers     = "no backers yet"
	PhraseOneBacker     = "one backer"
	PhraseBackersSuffix = "backers"
)

// Log messages
const (
	LogMsgViewAssembled = "Profile view assembled"
	LogMsgViewRedirect  = "Profile is claimed, redirecting"
)

// Error messages
const (
	ErrMsgFailedToResolve = "failed to resolve account"
	ErrMsgFailedTipFor    = "failed to load viewer tip"
	ErrMsgFailedBackers   = "failed to count backers"
)
