package search

import (
	"os"
)

// pathResolver confines paths to the allowed roots.
type pathResolver interface {
	Abs(path string) (string, error)
}

// fileSystem defines the filesystem operations needed by the file search.
// ReadFileRange is used to load .gitignore files.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

// ignoreMatcher decides whether a root-relative path is ignored.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}
