package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Account Metrics
var (
	AccountsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAccountsResolved,
			Help:      HelpTextAccountsResolved,
		},
		[]string{LabelNetwork, LabelOutcome},
	)

	AccountsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAccountsClaimed,
			Help:      HelpTextAccountsClaimed,
		},
	)

	LockTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameLockTransitions,
			Help:      HelpTextLockTransitions,
		},
		[]string{LabelAction, LabelResult},
	)
)

// Lookup Metrics
var (
	LookupRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameLookupRequests,
			Help:      HelpTextLookupRequests,
		},
		[]string{LabelNetwork, LabelOutcome},
	)

	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameLookupDuration,
			Help:      HelpTextLookupDuration,
			Buckets:   LookupLatencyBuckets,
		},
		[]string{LabelNetwork},
	)

	LookupCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameLookupCacheResult,
			Help:      HelpTextLookupCacheResult,
		},
		[]string{LabelResult},
	)
)

// Security Metrics
var (
	AuthFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAuthFailures,
			Help:      HelpTextAuthFailures,
		},
		[]string{LabelReason},
	)

	RequestsThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRequestsThrottled,
			Help:      HelpTextRequestsThrottled,
		},
	)
)
