package path

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbs(t *testing.T) {
	resolver := NewResolver("/data/allowed", "/home/user", "/data/allowed", "/srv/other")

	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{
			name:     "relative path within root",
			input:    "src/main.go",
			expected: "/data/allowed/src/main.go",
		},
		{
			name:     "absolute path within root",
			input:    "/data/allowed/src/main.go",
			expected: "/data/allowed/src/main.go",
		},
		{
			name:     "path equal to root",
			input:    "/data/allowed",
			expected: "/data/allowed",
		},
		{
			name:     "dot resolves to base dir",
			input:    ".",
			expected: "/data/allowed",
		},
		{
			name:     "second root",
			input:    "/srv/other/x.txt",
			expected: "/srv/other/x.txt",
		},
		{
			name:     "dots resolved inside root",
			input:    "src/../src/./main.go",
			expected: "/data/allowed/src/main.go",
		},
		{
			name:     "trailing slash",
			input:    "/data/allowed/dir/",
			expected: "/data/allowed/dir",
		},
		{
			name:  "traversal escape",
			input: "/data/allowed/../../etc/passwd",
			err:   ErrAccessDenied,
		},
		{
			name:  "relative traversal escape",
			input: "../../etc/passwd",
			err:   ErrAccessDenied,
		},
		{
			name:  "absolute path outside roots",
			input: "/etc/passwd",
			err:   ErrAccessDenied,
		},
		{
			name:  "prefix confusion",
			input: "/data/allowed-but-not/file",
			err:   ErrAccessDenied,
		},
		{
			name:  "parent of root",
			input: "/data",
			err:   ErrAccessDenied,
		},
		{
			name:  "home expansion outside roots",
			input: "~/notes.txt",
			err:   ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abs, err := resolver.Abs(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, abs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, abs)
		})
	}
}

func TestAbs_HomeExpansion(t *testing.T) {
	resolver := NewResolver("/", "/home/user", "/home/user/work")

	abs, err := resolver.Abs("~/work/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/work/a.txt", abs)

	abs, err = resolver.Abs("~/work/../work/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/work/b.txt", abs)
}

func TestAbs_HomeUnknown(t *testing.T) {
	resolver := NewResolver("/", "", "/home/user/work")

	_, err := resolver.Abs("~/work/a.txt")
	var homeErr *HomeExpansionError
	assert.True(t, errors.As(err, &homeErr))
}

func TestAbs_SameObjectSameCanonicalForm(t *testing.T) {
	resolver := NewResolver("/data/allowed", "", "/data/allowed")

	inputs := []string{
		"notes/a.txt",
		"./notes/a.txt",
		"/data/allowed/notes/a.txt",
		"/data/allowed/notes/../notes/a.txt",
		"notes//a.txt",
	}
	for _, in := range inputs {
		abs, err := resolver.Abs(in)
		require.NoError(t, err, in)
		assert.Equal(t, "/data/allowed/notes/a.txt", abs, in)
	}
}

func TestAbs_FilesystemRoot(t *testing.T) {
	resolver := NewResolver("/", "", "/")

	abs, err := resolver.Abs("/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, "/etc/hosts", abs)
}

func TestAbs_NoRoots(t *testing.T) {
	resolver := NewResolver("/", "")

	_, err := resolver.Abs("/tmp")
	assert.ErrorIs(t, err, ErrNoRoots)
}

func TestAccessDeniedError_Message(t *testing.T) {
	resolver := NewResolver("/data/allowed", "", "/data/allowed")

	_, err := resolver.Abs("/etc/shadow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Contains(t, err.Error(), "/etc/shadow")
}

func TestRel(t *testing.T) {
	resolver := NewResolver("/data/allowed", "", "/data/allowed", "/srv/other")

	rel, err := resolver.Rel("/srv/other/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "a/b.txt", rel)

	rel, err = resolver.Rel(".")
	require.NoError(t, err)
	assert.Equal(t, "", rel)

	_, err = resolver.Rel("/etc")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestRoots_ReturnsCopy(t *testing.T) {
	resolver := NewResolver("/", "", "/a", "/b")

	roots := resolver.Roots()
	roots[0] = "/"

	_, err := resolver.Abs("/etc")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, []string{"/a", "/b"}, resolver.Roots())
}

func TestCanonicaliseRoot(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("existing directory", func(t *testing.T) {
		got, err := CanonicaliseRoot(tmpDir+"/./", "/", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(tmpDir), got)
	})

	t.Run("relative directory uses base", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub"), 0o755))
		got, err := CanonicaliseRoot("sub", tmpDir, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "sub"), got)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := CanonicaliseRoot(filepath.Join(tmpDir, "missing"), "/", "")
		var rootErr *RootError
		require.True(t, errors.As(err, &rootErr))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("file is not a directory", func(t *testing.T) {
		file := filepath.Join(tmpDir, "file.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		_, err := CanonicaliseRoot(file, "/", "")
		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}

func TestCanonicaliseRoots(t *testing.T) {
	tmpDir := t.TempDir()

	roots, err := CanonicaliseRoots([]string{tmpDir, tmpDir + "/"}, "/", "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Clean(tmpDir)}, roots)

	_, err = CanonicaliseRoots(nil, "/", "")
	assert.ErrorIs(t, err, ErrNoRoots)

	_, err = CanonicaliseRoots([]string{tmpDir, filepath.Join(tmpDir, "nope")}, "/", "")
	assert.Error(t, err)
}
