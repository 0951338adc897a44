package file

import (
	"context"
)

// DeleteFileTool removes single files. Directories are refused.
type DeleteFileTool struct {
	fileOps      fileRemover
	pathResolver pathResolver
}

// NewDeleteFileTool creates a new DeleteFileTool with injected dependencies.
func NewDeleteFileTool(fileOps fileRemover, pathResolver pathResolver) *DeleteFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &DeleteFileTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
	}
}

func (t *DeleteFileTool) Run(ctx context.Context, req DeleteFileRequest) (*DeleteFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}

	info, err := t.fileOps.Lstat(abs)
	if err != nil {
		return nil, &StatError{Path: abs, Cause: err}
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: abs}
	}

	if err := t.fileOps.Remove(abs); err != nil {
		return nil, &DeleteError{Path: abs, Cause: err}
	}

	return &DeleteFileResponse{AbsolutePath: abs}, nil
}
