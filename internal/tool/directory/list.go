package directory

import (
	"context"
	"os"
	"path/filepath"
)

// ListDirectoryTool lists the immediate children of a directory.
type ListDirectoryTool struct {
	fs           dirReader
	pathResolver pathResolver
}

// NewListDirectoryTool creates a new ListDirectoryTool with injected dependencies.
func NewListDirectoryTool(fs dirReader, pathResolver pathResolver) *ListDirectoryTool {
	if fs == nil {
		panic("fs is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &ListDirectoryTool{fs: fs, pathResolver: pathResolver}
}

// Run returns entries in the order the OS enumerates them.
func (t *ListDirectoryTool) Run(ctx context.Context, req ListDirectoryRequest) (*ListDirectoryResponse, error) {
	if req.Path == "" {
		return nil, ErrPathRequired
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}

	entries, err := readDir(t.fs, abs)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{Name: e.Name(), Kind: kindOf(t.fs, abs, e)})
	}

	return &ListDirectoryResponse{AbsolutePath: abs, Entries: out}, nil
}

// readDir checks that abs is a directory and enumerates it.
func readDir(fs dirReader, abs string) ([]os.DirEntry, error) {
	info, err := fs.Stat(abs)
	if err != nil {
		return nil, &StatError{Path: abs, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: abs}
	}

	entries, err := fs.ReadDir(abs)
	if err != nil {
		return nil, &ListDirError{Path: abs, Cause: err}
	}
	return entries, nil
}

// kindOf classifies an entry, following symlinks the way a stat would.
// A dangling symlink is reported as a file.
func kindOf(fs dirReader, parent string, e os.DirEntry) Kind {
	if e.IsDir() {
		return KindDirectory
	}
	if e.Type()&os.ModeSymlink != 0 {
		if info, err := fs.Stat(filepath.Join(parent, e.Name())); err == nil && info.IsDir() {
			return KindDirectory
		}
	}
	return KindFile
}
