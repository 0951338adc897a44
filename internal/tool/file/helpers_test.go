package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/mcpbox/internal/config"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/fs"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/path"
	"github.com/stretchr/testify/require"
)

// sandbox is an allowed root with a sibling directory outside it.
type sandbox struct {
	root     string
	outside  string
	fs       *fs.OSFileSystem
	resolver *path.Resolver
	cfg      *config.Config
}

func newSandbox(t *testing.T) *sandbox {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "allowed")
	outside := filepath.Join(base, "allowed-but-not")
	require.NoError(t, os.Mkdir(root, 0o755))
	require.NoError(t, os.Mkdir(outside, 0o755))
	return &sandbox{
		root:     root,
		outside:  outside,
		fs:       fs.NewOSFileSystem(),
		resolver: path.NewResolver(root, "", root),
		cfg:      config.DefaultConfig(),
	}
}

func (s *sandbox) write(t *testing.T, rel, content string) string {
	t.Helper()
	p := filepath.Join(s.root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func readString(t *testing.T, p string) string {
	t.Helper()
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(data)
}
