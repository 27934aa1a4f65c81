// Package errors provides error handling for nldates.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := temporal.Initialize(cfg); err != nil {
//	    return errors.Wrap(err, "failed to initialize resolver")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "call temporal.Initialize first")
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotInitialized) {
//	    // retry after initialization
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// AssertionFailedf reports a programming error.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors for the resolver and its integration layers.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnparseable indicates no grammar rule matched the phrase, or the
	// matched rule produced a date outside the calendar.
	ErrUnparseable = New("unparseable phrase")

	// ErrNotInitialized indicates the resolver was used before Initialize
	ErrNotInitialized = New("resolver not initialized")

	// ErrAlreadyInitialized indicates Initialize ran twice without Teardown
	ErrAlreadyInitialized = New("resolver already initialized")

	// ErrInvalidConfiguration indicates an unrecognized configuration value
	// such as an unknown week-start policy or a malformed locale tag
	ErrInvalidConfiguration = New("invalid configuration")
)

// IsUnparseable checks if an error is or wraps ErrUnparseable
func IsUnparseable(err error) bool {
	return err != nil && Is(err, ErrUnparseable)
}

// IsNotInitialized checks if an error is or wraps ErrNotInitialized
func IsNotInitialized(err error) bool {
	return err != nil && Is(err, ErrNotInitialized)
}

// IsInvalidConfiguration checks if an error is or wraps ErrInvalidConfiguration
func IsInvalidConfiguration(err error) bool {
	return err != nil && Is(err, ErrInvalidConfiguration)
}

// NewInvalidConfigurationError creates an invalid-configuration error with a formatted message
func NewInvalidConfigurationError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfiguration, Newf(format, args...).Error())
}

// NewUnparseableError creates an unparseable error with a formatted message
func NewUnparseableError(format string, args ...interface{}) error {
	return Wrap(ErrUnparseable, Newf(format, args...).Error())
}
