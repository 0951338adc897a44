package search

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/Cyclone1070/mcpbox/internal/tool/service/git"
	"github.com/bmatcuk/doublestar/v4"
)

// SearchFilesTool finds files by name below a directory.
type SearchFilesTool struct {
	fs           fileSystem
	pathResolver pathResolver
}

// NewSearchFilesTool creates a new SearchFilesTool with injected dependencies.
func NewSearchFilesTool(fs fileSystem, pathResolver pathResolver) *SearchFilesTool {
	if fs == nil {
		panic("fs is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &SearchFilesTool{fs: fs, pathResolver: pathResolver}
}

// Run walks top-down: the files of a directory are examined before its
// subdirectories, each in enumeration order. A subdirectory whose path relative
// to the search root matches an exclude pattern is pruned with its subtree.
// Symlinked directories are not descended into. Matches are absolute paths.
func (t *SearchFilesTool) Run(ctx context.Context, req SearchFilesRequest) (*SearchFilesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !doublestar.ValidatePattern(req.Pattern) {
		return nil, &InvalidPatternError{Pattern: req.Pattern}
	}
	for _, p := range req.ExcludePatterns {
		if !doublestar.ValidatePattern(p) {
			return nil, &InvalidPatternError{Pattern: p}
		}
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}

	info, err := t.fs.Stat(abs)
	if err != nil {
		return nil, &StatError{Path: abs, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: abs}
	}

	var ignore ignoreMatcher = &git.NoOpMatcher{}
	if req.RespectGitignore {
		m, err := git.NewIgnoreMatcher(abs, t.fs)
		if err != nil {
			return nil, err
		}
		ignore = m
	}

	w := &walker{
		fs:       t.fs,
		root:     abs,
		pattern:  req.Pattern,
		excludes: req.ExcludePatterns,
		ignore:   ignore,
		matches:  []string{},
	}
	if err := w.walk(ctx, abs, ""); err != nil {
		return nil, err
	}

	return &SearchFilesResponse{Matches: w.matches}, nil
}

type walker struct {
	fs       fileSystem
	root     string
	pattern  string
	excludes []string
	ignore   ignoreMatcher
	matches  []string
}

// walk visits dir, whose slash-separated path relative to the root is rel.
func (w *walker) walk(ctx context.Context, dir, rel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return &WalkError{Path: dir, Cause: err}
	}

	var subdirs []os.DirEntry
	for _, e := range entries {
		childRel := path.Join(rel, e.Name())
		if w.isDir(dir, e) {
			if e.IsDir() {
				subdirs = append(subdirs, e)
			}
			continue
		}
		if w.ignore.ShouldIgnore(childRel, false) {
			continue
		}
		if ok, _ := doublestar.Match(w.pattern, e.Name()); ok {
			w.matches = append(w.matches, filepath.Join(dir, e.Name()))
		}
	}

	for _, e := range subdirs {
		childRel := path.Join(rel, e.Name())
		if w.excluded(childRel) || w.ignore.ShouldIgnore(childRel, true) {
			continue
		}
		if err := w.walk(ctx, filepath.Join(dir, e.Name()), childRel); err != nil {
			return err
		}
	}
	return nil
}

// isDir reports directories, including symlinks that resolve to one.
func (w *walker) isDir(parent string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := w.fs.Stat(filepath.Join(parent, e.Name()))
	return err == nil && info.IsDir()
}

func (w *walker) excluded(rel string) bool {
	for _, p := range w.excludes {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
