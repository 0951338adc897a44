package path

import (
	"errors"
	"fmt"
)

// -- Error Types --

// AccessDeniedError is returned when a canonical path is outside every allowed root.
type AccessDeniedError struct {
	Path string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: %s is outside allowed directories", e.Path)
}
func (e *AccessDeniedError) Unwrap() error { return ErrAccessDenied }

// RootError is returned when a configured root cannot be used.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid allowed directory %s: %v", e.Root, e.Cause)
}
func (e *RootError) Unwrap() error { return e.Cause }

// HomeExpansionError is returned when "~" cannot be expanded.
type HomeExpansionError struct {
	Path string
}

func (e *HomeExpansionError) Error() string {
	return fmt.Sprintf("cannot expand home directory in %s: home directory unknown", e.Path)
}

// -- Sentinels --

var (
	ErrAccessDenied  = errors.New("access denied")
	ErrNoRoots       = errors.New("no allowed directories configured")
	ErrBaseDirNotSet = errors.New("base directory not set")
	ErrNotADirectory = errors.New("not a directory")
)
