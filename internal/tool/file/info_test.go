package file

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileInfo(t *testing.T) {
	s := newSandbox(t)
	tool := NewFileInfoTool(s.fs, s.resolver)

	p := s.write(t, "info.txt", "12345")
	require.NoError(t, os.Chmod(p, 0o640))

	resp, err := tool.Run(context.Background(), FileInfoRequest{Path: "info.txt"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Size)
	assert.True(t, resp.IsFile)
	assert.False(t, resp.IsDirectory)
	assert.Equal(t, "640", resp.Permissions)
	for _, ts := range []string{resp.Created, resp.Modified, resp.Accessed} {
		_, err := time.Parse(time.RFC3339, ts)
		assert.NoError(t, err, ts)
	}

	dir, err := tool.Run(context.Background(), FileInfoRequest{Path: "."})
	require.NoError(t, err)
	assert.True(t, dir.IsDirectory)
	assert.False(t, dir.IsFile)
}
