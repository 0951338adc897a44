package search

import (
	"errors"
	"fmt"
)

type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }
func (e *StatError) IOError() bool { return true }

type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}
func (e *NotDirectoryError) Unwrap() error { return ErrNotADirectory }

type WalkError struct {
	Path  string
	Cause error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("failed to walk %s: %v", e.Path, e.Cause)
}
func (e *WalkError) Unwrap() error { return e.Cause }
func (e *WalkError) IOError() bool { return true }

type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern: %q", e.Pattern)
}
func (e *InvalidPatternError) Unwrap() error { return ErrInvalidPattern }

// -- Sentinels --

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPatternRequired = errors.New("pattern is required")
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrNotADirectory   = errors.New("not a directory")
)
