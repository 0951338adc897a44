package file

import (
	"context"

	"github.com/Cyclone1070/mcpbox/internal/config"
	"github.com/Cyclone1070/mcpbox/internal/tool/helper/content"
)

// ReadFileTool handles file reading operations.
type ReadFileTool struct {
	fileOps      fileReader
	pathResolver pathResolver
	config       *config.Config
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fileOps fileReader, pathResolver pathResolver, cfg *config.Config) *ReadFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &ReadFileTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
		config:       cfg,
	}
}

// Run reads a whole text file from inside the allowed roots.
// Fails on directories, files over tools.max_file_size and binary content.
func (t *ReadFileTool) Run(ctx context.Context, req ReadFileRequest) (*ReadFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}

	info, err := t.fileOps.Stat(abs)
	if err != nil {
		return nil, &StatError{Path: abs, Cause: err}
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: abs}
	}

	maxFileSize := t.config.Tools.MaxFileSize
	if info.Size() > maxFileSize {
		return nil, &TooLargeError{Path: abs, Size: info.Size(), Limit: maxFileSize}
	}

	data, err := t.fileOps.ReadFile(abs)
	if err != nil {
		return nil, &ReadError{Path: abs, Cause: err}
	}

	if content.IsBinaryContent(data) {
		return nil, &BinaryFileError{Path: abs}
	}

	return &ReadFileResponse{
		AbsolutePath: abs,
		Content:      string(data),
	}, nil
}
