package path

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver confines paths to a fixed set of allowed root directories.
// It is immutable after construction and safe for concurrent use.
//
// Canonicalisation is lexical: "~" is expanded, relative paths are joined to
// the base directory and "."/".." segments are cleaned. Symlinks are NOT
// resolved, so a symlink inside a root that points outside of it passes the
// check. Callers must treat that as a known containment gap.
type Resolver struct {
	roots   []string
	baseDir string
	homeDir string
}

// NewResolver creates a resolver for the given canonical roots.
// Relative paths are resolved against baseDir; homeDir is used for "~" expansion
// and may be empty, in which case "~" paths are rejected.
func NewResolver(baseDir, homeDir string, roots ...string) *Resolver {
	rs := make([]string, len(roots))
	copy(rs, roots)
	return &Resolver{
		roots:   rs,
		baseDir: baseDir,
		homeDir: homeDir,
	}
}

// CanonicaliseRoot normalises a configured root directory and checks that it
// exists and is a directory.
func CanonicaliseRoot(root, baseDir, homeDir string) (string, error) {
	canonical, err := canonicalise(root, baseDir, homeDir)
	if err != nil {
		return "", &RootError{Root: root, Cause: err}
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return "", &RootError{Root: canonical, Cause: err}
	}
	if !info.IsDir() {
		return "", &RootError{Root: canonical, Cause: ErrNotADirectory}
	}
	return canonical, nil
}

// CanonicaliseRoots applies CanonicaliseRoot to every entry and drops duplicates.
func CanonicaliseRoots(roots []string, baseDir, homeDir string) ([]string, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}
	seen := make(map[string]bool, len(roots))
	out := make([]string, 0, len(roots))
	for _, r := range roots {
		c, err := CanonicaliseRoot(r, baseDir, homeDir)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

// Roots returns a copy of the allowed roots.
func (r *Resolver) Roots() []string {
	out := make([]string, len(r.roots))
	copy(out, r.roots)
	return out
}

// BaseDir returns the directory relative paths are resolved against.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Abs canonicalises path and admits it only when it equals, or is a
// descendant of, one of the allowed roots.
//
// The result is only a decision at the time of the call: nothing stops the
// filesystem from changing between this check and the operation using it.
func (r *Resolver) Abs(path string) (string, error) {
	if len(r.roots) == 0 {
		return "", ErrNoRoots
	}
	abs, err := canonicalise(path, r.baseDir, r.homeDir)
	if err != nil {
		return "", err
	}
	for _, root := range r.roots {
		if within(root, abs) {
			return abs, nil
		}
	}
	return "", &AccessDeniedError{Path: abs}
}

// Rel returns the validated path relative to the root that contains it.
func (r *Resolver) Rel(path string) (string, error) {
	abs, err := r.Abs(path)
	if err != nil {
		return "", err
	}
	for _, root := range r.roots {
		if !within(root, abs) {
			continue
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			return "", &AccessDeniedError{Path: abs}
		}
		if rel == "." {
			return "", nil
		}
		return filepath.ToSlash(rel), nil
	}
	return "", &AccessDeniedError{Path: abs}
}

func canonicalise(path, baseDir, homeDir string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if homeDir == "" {
			return "", &HomeExpansionError{Path: path}
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if baseDir == "" {
		return "", ErrBaseDirNotSet
	}
	return filepath.Clean(filepath.Join(baseDir, path)), nil
}

// within reports whether abs is root or lies below it, comparing whole path
// segments so that "/data/allowed-but-not" is not inside "/data/allowed".
func within(root, abs string) bool {
	if root == string(filepath.Separator) {
		return filepath.IsAbs(abs)
	}
	return abs == root || strings.HasPrefix(abs, root+string(filepath.Separator))
}
