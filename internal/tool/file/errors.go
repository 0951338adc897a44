package file

import (
	"errors"
	"fmt"
)

// -- Error Types --

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

type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }
func (e *ReadError) IOError() bool { return true }

type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }
func (e *WriteError) IOError() bool { return true }

type MoveError struct {
	Source      string
	Destination string
	Cause       error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("failed to move %s to %s: %v", e.Source, e.Destination, e.Cause)
}
func (e *MoveError) Unwrap() error { return e.Cause }
func (e *MoveError) IOError() bool { return true }

type DeleteError struct {
	Path  string
	Cause error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("failed to delete %s: %v", e.Path, e.Cause)
}
func (e *DeleteError) Unwrap() error { return e.Cause }
func (e *DeleteError) IOError() bool { return true }

type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%s is a directory", e.Path)
}
func (e *IsDirectoryError) Unwrap() error { return ErrIsDirectory }

type TooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file too large: %s (size %d, limit %d)", e.Path, e.Size, e.Limit)
}
func (e *TooLargeError) Unwrap() error { return ErrFileTooLarge }

type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return fmt.Sprintf("%s is a binary file", e.Path)
}
func (e *BinaryFileError) Unwrap() error { return ErrBinaryFile }

// EditNotFoundError is returned when no line equals the text an edit targets.
type EditNotFoundError struct {
	Path    string
	Index   int
	OldText string
}

func (e *EditNotFoundError) Error() string {
	return fmt.Sprintf("text to replace not found in %s (edit %d): %q", e.Path, e.Index+1, e.OldText)
}
func (e *EditNotFoundError) Unwrap() error { return ErrEditNotFound }

// -- Sentinels --

var (
	ErrPathRequired  = errors.New("path is required")
	ErrEditsRequired = errors.New("edits cannot be empty")
	ErrEditNotFound  = errors.New("text to replace not found")
	ErrIsDirectory   = errors.New("path is a directory")
	ErrFileTooLarge  = errors.New("file too large")
	ErrBinaryFile    = errors.New("file is binary")
)
