package directory

import (
	"context"
)

// ListFilesTool lists entry names of a workspace directory, directories suffixed with "/".
type ListFilesTool struct {
	fs           dirReader
	pathResolver pathResolver
}

// NewListFilesTool creates a new ListFilesTool with injected dependencies.
func NewListFilesTool(fs dirReader, pathResolver pathResolver) *ListFilesTool {
	if fs == nil {
		panic("fs is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &ListFilesTool{fs: fs, pathResolver: pathResolver}
}

// Run defaults to "." which resolves to the workspace root.
func (t *ListFilesTool) Run(ctx context.Context, req ListFilesRequest) (*ListFilesResponse, error) {
	p := req.Path
	if p == "" {
		p = "."
	}

	abs, err := t.pathResolver.Abs(p)
	if err != nil {
		return nil, err
	}

	entries, err := readDir(t.fs, abs)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if kindOf(t.fs, abs, e) == KindDirectory {
			name += "/"
		}
		files = append(files, name)
	}
	return &ListFilesResponse{Files: files}, nil
}
