package config

import (
	"errors"
	"fmt"
)

// ConfigError is a fatal startup configuration problem.
type ConfigError struct {
	Reason string
	Cause  error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Cause)
	}
	return e.Reason
}
func (e *ConfigError) Unwrap() error { return e.Cause }

var (
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")
)
