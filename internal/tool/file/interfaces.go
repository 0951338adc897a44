package file

import (
	"os"
)

// pathResolver confines paths to the allowed roots.
type pathResolver interface {
	Abs(path string) (string, error)
}

// fileReader defines the minimal filesystem operations needed for reading files.
type fileReader interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// fileWriter defines the minimal filesystem operations needed for writing files.
type fileWriter interface {
	Stat(path string) (os.FileInfo, error)
	EnsureDirs(path string) error
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// fileEditor defines the minimal filesystem operations needed for editing files.
type fileEditor interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// fileMover defines the filesystem operations needed for moving files.
type fileMover interface {
	Lstat(path string) (os.FileInfo, error)
	Rename(oldPath, newPath string) error
}

// fileRemover defines the filesystem operations needed for deleting files.
type fileRemover interface {
	Lstat(path string) (os.FileInfo, error)
	Remove(path string) error
}

// fileStater defines the filesystem operations needed for file metadata.
type fileStater interface {
	Stat(path string) (os.FileInfo, error)
}
