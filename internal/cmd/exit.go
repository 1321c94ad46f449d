package cmd

import (
	"errors"
	"fmt"
)

// silentExitError signals that a command already rendered its own
// failure output and only needs a specific process exit code. Execute
// unwraps it instead of printing a second error line.
type silentExitError struct {
	code int
}

func (e *silentExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// SilentExit returns an error that terminates the process with code
// and no further output.
func SilentExit(code int) error {
	return &silentExitError{code: code}
}

// IsSilentExit reports whether err is a silent exit and, if so, its
// exit code.
func IsSilentExit(err error) (int, bool) {
	var se *silentExitError
	if errors.As(err, &se) {
		return se.code, true
	}
	return 0, false
}
