package executor

import (
	"fmt"
)

// CommandError is returned when a command cannot be started.
type CommandError struct {
	Cmd   string
	Stage string
	Cause error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to %s command %s: %v", e.Stage, e.Cmd, e.Cause)
}
func (e *CommandError) Unwrap() error { return e.Cause }
