package toolmanager

import (
	"errors"
	"fmt"
)

// SchemaError is returned when a tool's input schema cannot be converted.
type SchemaError struct {
	Tool  string
	Cause error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("tool %s: invalid input schema: %v", e.Tool, e.Cause)
}
func (e *SchemaError) Unwrap() error { return e.Cause }

// UnknownToolError is reported to the model when it calls a tool the server
// did not list.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}
func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }

var ErrUnknownTool = errors.New("unknown tool")
