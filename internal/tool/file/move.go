package file

import (
	"context"
)

// MoveFileTool moves or renames files and directories.
type MoveFileTool struct {
	fileOps      fileMover
	pathResolver pathResolver
}

// NewMoveFileTool creates a new MoveFileTool with injected dependencies.
func NewMoveFileTool(fileOps fileMover, pathResolver pathResolver) *MoveFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &MoveFileTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
	}
}

// Run validates both endpoints before touching the filesystem, so a denied
// destination never disturbs the source. An existing destination file is replaced.
func (t *MoveFileTool) Run(ctx context.Context, req MoveFileRequest) (*MoveFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	src, err := t.pathResolver.Abs(req.Source)
	if err != nil {
		return nil, err
	}
	dst, err := t.pathResolver.Abs(req.Destination)
	if err != nil {
		return nil, err
	}

	if _, err := t.fileOps.Lstat(src); err != nil {
		return nil, &StatError{Path: src, Cause: err}
	}

	if err := t.fileOps.Rename(src, dst); err != nil {
		return nil, &MoveError{Source: src, Destination: dst, Cause: err}
	}

	return &MoveFileResponse{Source: src, Destination: dst}, nil
}
