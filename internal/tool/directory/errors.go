package directory

import (
	"errors"
	"fmt"
)

// StatError wraps a failed stat. errors.Is(err, fs.ErrNotExist) reports a missing path.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }
func (e *StatError) IOError() bool { return true }

type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to list %s: %v", e.Path, e.Cause)
}
func (e *ListDirError) Unwrap() error { return e.Cause }
func (e *ListDirError) IOError() bool { return true }

type CreateDirError struct {
	Path  string
	Cause error
}

func (e *CreateDirError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Cause)
}
func (e *CreateDirError) Unwrap() error { return e.Cause }
func (e *CreateDirError) IOError() bool { return true }

type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}
func (e *NotADirectoryError) Unwrap() error { return ErrNotADirectory }

// -- Sentinels --

var (
	ErrNotADirectory = errors.New("not a directory")
	ErrPathRequired  = errors.New("path is required")
)
