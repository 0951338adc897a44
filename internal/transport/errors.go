package transport

import (
	"errors"
	"fmt"
)

// TransportError is returned when a request could not reach the tool server
// or its reply could not be read.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Cause)
}
func (e *TransportError) Unwrap() error { return e.Cause }

var (
	ErrEmptyCommand = errors.New("server command is empty")
	ErrClosed       = errors.New("transport closed")
)
