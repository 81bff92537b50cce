package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every service metric except the HTTP ones
const Namespace = "pledgeboard"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Domain metric names
const (
	MetricNameAccountsResolved  = "accounts_resolved_total"
	MetricNameAccountsClaimed   = "accounts_claimed_total"
	MetricNameLockTransitions   = "lock_transitions_total"
	MetricNameLookupRequests    = "lookup_requests_total"
	MetricNameLookupDuration    = "lookup_duration_seconds"
	MetricNameLookupCacheResult = "lookup_cache_total"
)

// Security metric names
const (
	MetricNameAuthFailures      = "auth_failures_total"
	MetricNameRequestsThrottled = "requests_throttled_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextEventsPublished      = "Total number of account events published"
	HelpTextAccountsResolved     = "Identity resolutions by network and outcome"
	HelpTextAccountsClaimed      = "Accounts moved to the claimed state"
	HelpTextLockTransitions      = "Lock and unlock requests by action and result"
	HelpTextLookupRequests       = "Upstream profile lookups by network and outcome"
	HelpTextLookupDuration       = "Upstream profile lookup latency in seconds"
	HelpTextLookupCacheResult    = "Profile cache hits and misses"
	HelpTextAuthFailures         = "Rejected API requests by reason"
	HelpTextRequestsThrottled    = "Requests refused because the client exceeded its request window"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelNetwork = "network"
	LabelOutcome = "outcome"
	LabelAction  = "action"
	LabelResult  = "result"
	LabelReason  = "reason"
)

// Resolution outcomes
const (
	OutcomeCreated  = "created"
	OutcomeExisting = "existing"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// Lookup outcomes
const (
	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeHit         = "hit"
	OutcomeMiss        = "miss"
)

// Auth failure reasons
const (
	ReasonMissingKey = "missing_key"
	ReasonInvalidKey = "invalid_key"
)

// Lock transition results
const (
	ResultApplied = "applied"
	ResultNoop    = "noop"
	ResultRefused = "refused"
	ResultError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LookupLatencyBuckets covers fast cache-adjacent replies up to the lookup timeout
var LookupLatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2, 3, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
