package lookup

import "time"

// Default upstream endpoints
const (
	DefaultGitHubAPIURL    = "https://api.github.com"
	DefaultBitbucketAPIURL = "https://api.bitbucket.org"
	DefaultTwitterAPIURL   = "https://api.twitter.com"
)

// Client defaults
const (
	DefaultTimeout   = 3 * time.Second
	DefaultUserAgent = "pledgeboard"

	// maxBodyBytes caps how much of an upstream reply is decoded
	maxBodyBytes = 1 << 20
)

// Cache defaults
const (
	DefaultCacheSize  = 1024
	DefaultCacheTTL   = 10 * time.Minute
	DefaultRatePerSec = 10
	DefaultBurst      = 20
)

// Log messages
const (
	LogMsgLookupFound       = "Profile lookup succeeded"
	LogMsgLookupNotFound    = "Profile not found upstream"
	LogMsgLookupUnavailable = "Profile lookup unavailable"
)

// Error messages
const (
	ErrMsgUnexpectedStatus = "unexpected upstream status"
	ErrMsgDecodeFailed     = "failed to decode upstream profile"
	ErrMsgBuildRequest     = "failed to build upstream request"
	ErrMsgEmptyHandle      = "empty handle"
	ErrMsgRateLimited      = "lookup rate limit wait failed"
)
