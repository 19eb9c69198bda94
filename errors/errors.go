// Package errors provides error handling for csvlint.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints on CLI errors
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrBadDelimiter) {
//	    // handle invalid delimiter
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Common sentinel errors for use across csvlint.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrBadDelimiter indicates the delimiter flag did not resolve to a single byte
	ErrBadDelimiter = New("only one-character delimiters are supported")

	// ErrFileNotFound indicates the input file does not exist
	ErrFileNotFound = New("file does not exist")
)

// IsBadDelimiterError checks if an error is or wraps ErrBadDelimiter
func IsBadDelimiterError(err error) bool {
	return err != nil && Is(err, ErrBadDelimiter)
}

// IsFileNotFoundError checks if an error is or wraps ErrFileNotFound
func IsFileNotFoundError(err error) bool {
	return err != nil && Is(err, ErrFileNotFound)
}

// NewBadDelimiterError creates a bad-delimiter error naming the offending input
func NewBadDelimiterError(delimiter string) error {
	return Wrapf(ErrBadDelimiter, "error parsing delimiter %q", delimiter)
}
