package file

import (
	"fmt"
)

// -- Read File --

type ReadFileRequest struct {
	Path string `json:"path" jsonschema:"path of the file to read"`
}

func (r ReadFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type ReadFileResponse struct {
	AbsolutePath string `json:"path"`
	Content      string `json:"content"`
}

// -- Write File --

type WriteFileRequest struct {
	Path    string `json:"path" jsonschema:"path of the file to create or overwrite"`
	Content string `json:"content" jsonschema:"full text content to write"`
}

func (r WriteFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type WriteFileResponse struct {
	AbsolutePath string `json:"path"`
	BytesWritten int    `json:"bytes_written"`
}

func (r *WriteFileResponse) String() string {
	return fmt.Sprintf("Successfully wrote to %s", r.AbsolutePath)
}

// -- Edit File --

// EditOperation replaces the first line equal to OldText with NewText.
type EditOperation struct {
	OldText string `json:"oldText" jsonschema:"exact content of the line to replace"`
	NewText string `json:"newText" jsonschema:"replacement content for that line"`
}

type EditFileRequest struct {
	Path   string          `json:"path" jsonschema:"path of the file to edit"`
	Edits  []EditOperation `json:"edits" jsonschema:"line replacements applied in order"`
	DryRun bool            `json:"dry_run,omitempty" jsonschema:"compute the result without writing it"`
}

func (r EditFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	if len(r.Edits) == 0 {
		return ErrEditsRequired
	}
	return nil
}

type EditFileResponse struct {
	AbsolutePath string `json:"path"`
	Content      string `json:"content"`
	Diff         string `json:"diff"`
	Written      bool   `json:"written"`
}

// -- Move File --

type MoveFileRequest struct {
	Source      string `json:"source" jsonschema:"path to move from"`
	Destination string `json:"destination" jsonschema:"path to move to"`
}

func (r MoveFileRequest) Validate() error {
	if r.Source == "" || r.Destination == "" {
		return ErrPathRequired
	}
	return nil
}

type MoveFileResponse struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

func (r *MoveFileResponse) String() string {
	return fmt.Sprintf("Successfully moved %s to %s", r.Source, r.Destination)
}

// -- Delete File --

type DeleteFileRequest struct {
	Path string `json:"path" jsonschema:"path of the file to delete"`
}

func (r DeleteFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type DeleteFileResponse struct {
	AbsolutePath string `json:"path"`
}

func (r *DeleteFileResponse) String() string {
	return fmt.Sprintf("Successfully deleted %s", r.AbsolutePath)
}

// -- File Info --

type FileInfoRequest struct {
	Path string `json:"path" jsonschema:"path of the file or directory"`
}

func (r FileInfoRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

// FileInfoResponse carries metadata. Times are RFC 3339; Permissions holds the
// three low octal digits of the mode, e.g. "644".
type FileInfoResponse struct {
	Size        int64  `json:"size"`
	Created     string `json:"created"`
	Modified    string `json:"modified"`
	Accessed    string `json:"accessed"`
	IsDirectory bool   `json:"is_directory"`
	IsFile      bool   `json:"is_file"`
	Permissions string `json:"permissions"`
}
