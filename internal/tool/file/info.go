package file

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/djherbis/times"
)

// FileInfoTool reports metadata for a file or directory.
type FileInfoTool struct {
	fileOps      fileStater
	pathResolver pathResolver
}

// NewFileInfoTool creates a new FileInfoTool with injected dependencies.
func NewFileInfoTool(fileOps fileStater, pathResolver pathResolver) *FileInfoTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &FileInfoTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
	}
}

// Run stats the path (following symlinks).
func (t *FileInfoTool) Run(ctx context.Context, req FileInfoRequest) (*FileInfoResponse, error) {
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

	return newFileInfoResponse(info), nil
}

func newFileInfoResponse(info os.FileInfo) *FileInfoResponse {
	ts := times.Get(info)
	return &FileInfoResponse{
		Size:        info.Size(),
		Created:     createdTime(ts).Format(time.RFC3339),
		Modified:    ts.ModTime().Format(time.RFC3339),
		Accessed:    ts.AccessTime().Format(time.RFC3339),
		IsDirectory: info.IsDir(),
		IsFile:      info.Mode().IsRegular(),
		Permissions: fmt.Sprintf("%03o", info.Mode().Perm()),
	}
}

// createdTime prefers the birth time and falls back to the status change time
// (Linux stat has no birth time), then to the modification time.
func createdTime(ts times.Timespec) time.Time {
	switch {
	case ts.HasBirthTime():
		return ts.BirthTime()
	case ts.HasChangeTime():
		return ts.ChangeTime()
	default:
		return ts.ModTime()
	}
}
