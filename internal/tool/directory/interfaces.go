package directory

import (
	"os"
)

// pathResolver confines paths to the allowed roots.
type pathResolver interface {
	Abs(path string) (string, error)
}

// dirCreator defines the filesystem operations needed to create directories.
type dirCreator interface {
	Stat(path string) (os.FileInfo, error)
	EnsureDirs(path string) error
}

// dirReader defines the filesystem operations needed to enumerate directories.
type dirReader interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
}
