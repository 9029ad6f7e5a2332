// Package errors defines the application error taxonomy. Every failure that
// reaches the top of the program is one of three kinds: the input file could
// not be found or read, the input file could not be parsed, or something
// unexpected went wrong. Each kind carries a stable machine-readable code
// and a process exit code; per-row data problems are not errors at all and
// are handled by row filtering in the aggregator.
package errors

import (
	"errors"
	"fmt"
)

// Stable error codes reported in diagnostics.
const (
	CodeInputNotFound  = "INPUT_NOT_FOUND"
	CodeMalformedInput = "MALFORMED_INPUT"
	CodeInternal       = "INTERNAL_ERROR"
)

// Process exit codes for each error kind. Success is 0.
const (
	ExitOK             = 0
	ExitInputNotFound  = 1
	ExitMalformedInput = 2
	ExitInternal       = 3
)

// AppError represents a structured application error.
type AppError struct {
	Code     string
	ExitCode int
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code so callers can compare against the
// sentinel constructors without caring about the wrapped cause.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

// InputNotFound reports a source file that is missing or unreadable.
func InputNotFound(path string, err error) *AppError {
	return &AppError{
		Code:     CodeInputNotFound,
		ExitCode: ExitInputNotFound,
		Message:  fmt.Sprintf("input file not found or unreadable: %s", path),
		Err:      err,
	}
}

// MalformedInput reports a structural parse failure in the source file.
func MalformedInput(err error) *AppError {
	return &AppError{
		Code:     CodeMalformedInput,
		ExitCode: ExitMalformedInput,
		Message:  "malformed input",
		Err:      err,
	}
}

// Internal wraps an unexpected fault, preserving the cause for diagnostics.
func Internal(err error) *AppError {
	return &AppError{
		Code:     CodeInternal,
		ExitCode: ExitInternal,
		Message:  "internal error",
		Err:      err,
	}
}

// From maps any error to an AppError. Errors that are already AppErrors
// pass through unchanged; everything else is treated as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// ExitCode returns the process exit code for err, or ExitOK for nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return From(err).ExitCode
}
