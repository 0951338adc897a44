package directory

import (
	"context"
	"errors"
	"io/fs"
)

// CreateDirectoryTool creates directories, including missing parents.
type CreateDirectoryTool struct {
	fs           dirCreator
	pathResolver pathResolver
}

// NewCreateDirectoryTool creates a new CreateDirectoryTool with injected dependencies.
func NewCreateDirectoryTool(fs dirCreator, pathResolver pathResolver) *CreateDirectoryTool {
	if fs == nil {
		panic("fs is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &CreateDirectoryTool{fs: fs, pathResolver: pathResolver}
}

// Run is idempotent: an existing directory is not an error.
func (t *CreateDirectoryTool) Run(ctx context.Context, req CreateDirectoryRequest) (*CreateDirectoryResponse, error) {
	if req.Path == "" {
		return nil, ErrPathRequired
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}

	info, err := t.fs.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return &CreateDirectoryResponse{AbsolutePath: abs, Created: false}, nil
	case err == nil:
		return nil, &NotADirectoryError{Path: abs}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, &StatError{Path: abs, Cause: err}
	}

	if err := t.fs.EnsureDirs(abs); err != nil {
		return nil, &CreateDirError{Path: abs, Cause: err}
	}

	return &CreateDirectoryResponse{AbsolutePath: abs, Created: true}, nil
}
