package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Identity errors
	ErrMsgNotFound        = "profile not found"
	ErrMsgInvalidProfile  = "invalid profile"
	ErrMsgInvalidNetwork  = "invalid network"
	ErrMsgAccountNotFound = "account not found"

	// Lifecycle errors
	ErrMsgInvalidTransition = "invalid transition"

	// Database/System errors
	ErrMsgUnavailable = "service unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound means the external identity lookup failed or had no match
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrInvalidProfile means upstream data is missing a required identity field
	ErrInvalidProfile = errors.New(ErrMsgInvalidProfile)

	// ErrInvalidNetwork means the network name is not one of the supported networks
	ErrInvalidNetwork = errors.New(ErrMsgInvalidNetwork)

	// ErrAccountNotFound means no stored account has the given ID or identity
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)

	// ErrInvalidTransition means a lock/unlock was requested for a state the account can no longer occupy
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)

	// ErrUnavailable covers store outages and lookup timeouts
	ErrUnavailable = errors.New(ErrMsgUnavailable)
)

// WrapInvalidProfile annotates ErrInvalidProfile with a reason
func WrapInvalidProfile(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, reason)
}

// LookupUnavailable reports a lookup that could not complete.
// Callers see it as ErrNotFound; the cause stays matchable as ErrUnavailable.
func LookupUnavailable(cause error) error {
	return fmt.Errorf("%w: %w: %v", ErrNotFound, ErrUnavailable, cause)
}
