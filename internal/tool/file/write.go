package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/mcpbox/internal/config"
)

// WriteFileTool handles file creation and overwrite.
type WriteFileTool struct {
	fileOps      fileWriter
	pathResolver pathResolver
	config       *config.Config
}

// NewWriteFileTool creates a new WriteFileTool with injected dependencies.
func NewWriteFileTool(fileOps fileWriter, pathResolver pathResolver, cfg *config.Config) *WriteFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &WriteFileTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
		config:       cfg,
	}
}

// Run creates or overwrites a file with the given content.
// Missing parent directories are created. An existing file keeps its permissions.
func (t *WriteFileTool) Run(ctx context.Context, req WriteFileRequest) (*WriteFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}

	data := []byte(req.Content)
	maxFileSize := t.config.Tools.MaxFileSize
	if int64(len(data)) > maxFileSize {
		return nil, &TooLargeError{Path: abs, Size: int64(len(data)), Limit: maxFileSize}
	}

	perm := os.FileMode(0o644)
	info, err := t.fileOps.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return nil, &IsDirectoryError{Path: abs}
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return nil, &StatError{Path: abs, Cause: err}
	}

	if err := t.fileOps.EnsureDirs(filepath.Dir(abs)); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}

	if err := t.fileOps.WriteFileAtomic(abs, data, perm); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}

	return &WriteFileResponse{
		AbsolutePath: abs,
		BytesWritten: len(data),
	}, nil
}
