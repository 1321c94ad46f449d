// Package exitcode defines structured exit codes for jscom commands.
// These codes let scripts (cron jobs, systemd timers, dynamic-DNS update
// hooks) distinguish failure classes without parsing error messages.
//
// # Exit Codes
//
//   - 0: Success
//   - 1: General failure (validation, network, server, unexpected)
//   - 2: Authentication failure (fixable by supplying a valid token)
//
// Authentication gets its own code because it is the one failure an
// operator can always fix locally; everything else means "look at the
// message".
//
// # Usage
//
// Create errors with specific codes:
//
//	return exitcode.Newf(exitcode.ErrAuth, "authentication failed: %v", err)
//
// Extract codes from errors (works with wrapped errors):
//
//	code := exitcode.Code(err)  // Returns ErrGeneral for non-coded errors
package exitcode

import (
	"errors"
	"fmt"
)

// Exit codes for jscom commands.
const (
	// Success indicates the command completed successfully.
	Success = 0

	// ErrGeneral covers validation, network, server and unexpected errors.
	ErrGeneral = 1

	// ErrAuth indicates the API rejected the configured auth token.
	ErrAuth = 2
)

// Error wraps an error with a specific exit code.
type Error struct {
	Code    int
	Message string
	Cause   error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new coded error.
func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new coded error with printf-style formatting.
func Newf(code int, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code int, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Code extracts the exit code from an error.
// Returns ErrGeneral (1) if the error doesn't have a code.
func Code(err error) int {
	if err == nil {
		return Success
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ErrGeneral
}

// Is checks if an error has a specific exit code.
func Is(err error, code int) bool {
	return Code(err) == code
}
