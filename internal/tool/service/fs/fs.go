package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
// It performs no confinement checks of its own; callers validate paths first.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info for a path without following symlinks.
func (fs *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadFile reads the whole file.
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadFileRange reads a range of bytes from a file.
// If offset and limit are both 0, reads the entire file.
func (fs *OSFileSystem) ReadFileRange(path string, offset, limit int64) ([]byte, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if offset == 0 && limit == 0 {
		return io.ReadAll(file)
	}

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	var r io.Reader = file
	if limit > 0 {
		r = io.LimitReader(file, limit)
	}
	return io.ReadAll(r)
}

// WriteFileAtomic writes content to a file atomically using temp file + rename pattern.
// If the process crashes mid-write, the original file remains intact.
// The temp file is created in the same directory as the target so the rename stays on one device.
func (fs *OSFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return &TempFileError{Dir: dir, Cause: err}
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return &TempWriteError{Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		return &TempSyncError{Path: tmpPath, Cause: err}
	}

	// Close before rename (required on some systems)
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return &TempCloseError{Path: tmpPath, Cause: err}
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		return &RenameError{Old: tmpPath, New: path, Cause: err}
	}
	needsCleanup = false

	if err := os.Chmod(path, perm); err != nil {
		return &ChmodError{Path: path, Mode: perm, Cause: err}
	}

	return nil
}

// EnsureDirs creates a directory and its parents if they don't exist.
func (fs *OSFileSystem) EnsureDirs(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Rename moves oldPath to newPath.
func (fs *OSFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Remove deletes a file or an empty directory.
func (fs *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// UserHomeDir returns the current user's home directory.
func (fs *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ReadDir lists directory entries in the order the OS enumerates them.
// Unlike os.ReadDir the result is not sorted by name.
func (fs *OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, &ReadDirError{Path: path, Cause: err}
	}
	return entries, nil
}
