package shell

import (
	"errors"
	"fmt"
)

// ShellConfigError is returned when the configured shell command line is unusable.
type ShellConfigError struct {
	Shell string
	Cause error
}

func (e *ShellConfigError) Error() string {
	return fmt.Sprintf("invalid shell %q: %v", e.Shell, e.Cause)
}
func (e *ShellConfigError) Unwrap() error { return e.Cause }

// ExecError is returned when a command could not be run at all.
type ExecError struct {
	Command string
	Cause   error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to run %q: %v", e.Command, e.Cause)
}
func (e *ExecError) Unwrap() error { return e.Cause }
func (e *ExecError) IOError() bool { return true }

// -- Sentinels --

var (
	ErrCommandRequired = errors.New("command cannot be empty")
	ErrEmptyShell      = errors.New("shell command line is empty")
)
