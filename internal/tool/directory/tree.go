package directory

import (
	"context"
	"path/filepath"
)

// DirectoryTreeTool builds a recursive view of a directory.
//
// Only the top-level path is checked against the allowed roots. Descendants
// are trusted because they sit below a validated directory; symlinked
// directories are listed as files and never descended into, so a link
// pointing outside the roots cannot expose its contents through the tree.
type DirectoryTreeTool struct {
	fs           dirReader
	pathResolver pathResolver
}

// NewDirectoryTreeTool creates a new DirectoryTreeTool with injected dependencies.
func NewDirectoryTreeTool(fs dirReader, pathResolver pathResolver) *DirectoryTreeTool {
	if fs == nil {
		panic("fs is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &DirectoryTreeTool{fs: fs, pathResolver: pathResolver}
}

func (t *DirectoryTreeTool) Run(ctx context.Context, req DirectoryTreeRequest) (*TreeNode, error) {
	if req.Path == "" {
		return nil, ErrPathRequired
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}

	return t.build(ctx, abs)
}

// build walks depth-first, children in enumeration order.
func (t *DirectoryTreeTool) build(ctx context.Context, abs string) (*TreeNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := readDir(t.fs, abs)
	if err != nil {
		return nil, err
	}

	node := &TreeNode{
		Name:     filepath.Base(abs),
		Type:     KindDirectory,
		Children: make([]*TreeNode, 0, len(entries)),
	}
	for _, e := range entries {
		if !e.IsDir() {
			node.Children = append(node.Children, &TreeNode{Name: e.Name(), Type: KindFile})
			continue
		}
		child, err := t.build(ctx, filepath.Join(abs, e.Name()))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}
