package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/Cyclone1070/mcpbox/internal/config"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/executor"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/fs"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/path"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, sets ...Registrar) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv, err := New("test", "", sets...)
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func call(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return res
}

func toolNames(t *testing.T, cs *mcp.ClientSession) []string {
	t.Helper()
	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	return names
}

func newFilesystemSession(t *testing.T) (*mcp.ClientSession, string, string) {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "allowed")
	require.NoError(t, os.Mkdir(root, 0o755))
	outside := filepath.Join(base, "allowed-but-not")
	require.NoError(t, os.Mkdir(outside, 0o755))

	resolver := path.NewResolver(root, "", root)
	cs := connect(t, NewFilesystemToolSet(fs.NewOSFileSystem(), resolver, config.DefaultConfig()))
	return cs, root, outside
}

func TestFilesystemToolSet_ListTools(t *testing.T) {
	cs, _, _ := newFilesystemSession(t)

	assert.Equal(t, []string{
		"create_directory",
		"directory_tree",
		"edit_file",
		"get_file_info",
		"list_allowed_directories",
		"list_directory",
		"move_file",
		"read_file",
		"search_files",
		"write_file",
	}, toolNames(t, cs))
}

func TestFilesystemToolSet_InputSchemaHasProperties(t *testing.T) {
	cs, _, _ := newFilesystemSession(t)

	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	for _, tool := range res.Tools {
		if tool.Name != "write_file" {
			continue
		}
		require.NotNil(t, tool.InputSchema)
		raw, err := json.Marshal(tool.InputSchema)
		require.NoError(t, err)
		var schema struct {
			Type       string                     `json:"type"`
			Properties map[string]json.RawMessage `json:"properties"`
		}
		require.NoError(t, json.Unmarshal(raw, &schema))
		assert.Equal(t, "object", schema.Type)
		assert.Contains(t, schema.Properties, "path")
		assert.Contains(t, schema.Properties, "content")
		return
	}
	t.Fatal("write_file not listed")
}

func TestFilesystemToolSet_ListAllowedDirectories(t *testing.T) {
	cs, root, _ := newFilesystemSession(t)

	res := call(t, cs, "list_allowed_directories", map[string]any{})
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), root)
}

func TestFilesystemToolSet_WriteReadRoundTrip(t *testing.T) {
	cs, root, _ := newFilesystemSession(t)
	target := filepath.Join(root, "notes", "a.txt")

	res := call(t, cs, "write_file", map[string]any{"path": target, "content": "hello\nworld\n"})
	require.False(t, res.IsError, text(t, res))
	assert.Equal(t, "Successfully wrote to "+target, text(t, res))

	res = call(t, cs, "read_file", map[string]any{"path": target})
	require.False(t, res.IsError)
	assert.Equal(t, "hello\nworld\n", text(t, res))
}

func TestFilesystemToolSet_AccessDeniedIsToolError(t *testing.T) {
	cs, _, outside := newFilesystemSession(t)
	secret := filepath.Join(outside, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("s3cret"), 0o644))

	res := call(t, cs, "read_file", map[string]any{"path": secret})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "access denied")
	assert.NotContains(t, text(t, res), "s3cret")

	res = call(t, cs, "write_file", map[string]any{"path": filepath.Join(outside, "x"), "content": "x"})
	assert.True(t, res.IsError)
	_, err := os.Stat(filepath.Join(outside, "x"))
	assert.True(t, os.IsNotExist(err))
}

func TestFilesystemToolSet_EditFile(t *testing.T) {
	cs, root, _ := newFilesystemSession(t)
	target := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(target, []byte("one\ntwo\n"), 0o644))

	res := call(t, cs, "edit_file", map[string]any{
		"path":  target,
		"edits": []map[string]any{{"oldText": "two", "newText": "TWO"}},
	})
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), "+TWO")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "one\nTWO\n", string(data))

	res = call(t, cs, "edit_file", map[string]any{
		"path":  target,
		"edits": []map[string]any{{"oldText": "missing", "newText": "x"}},
	})
	assert.True(t, res.IsError)
}

func TestFilesystemToolSet_ListDirectory(t *testing.T) {
	cs, root, _ := newFilesystemSession(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), nil, 0o644))

	res := call(t, cs, "list_directory", map[string]any{"path": root})
	require.False(t, res.IsError)
	lines := strings.Split(text(t, res), "\n")
	assert.ElementsMatch(t, []string{"[FILE] a.txt", "[DIR] sub"}, lines)
}

func TestFilesystemToolSet_DirectoryTree(t *testing.T) {
	cs, root, _ := newFilesystemSession(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), nil, 0o644))

	res := call(t, cs, "directory_tree", map[string]any{"path": root})
	require.False(t, res.IsError)
	out := text(t, res)
	assert.Contains(t, out, `"name": "allowed"`)
	assert.Contains(t, out, `"name": "b.txt"`)
	assert.Contains(t, out, `"type": "file"`)
}

func TestFilesystemToolSet_MoveAndSearch(t *testing.T) {
	cs, root, outside := newFilesystemSession(t)
	src := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	res := call(t, cs, "move_file", map[string]any{"source": src, "destination": filepath.Join(outside, "a.txt")})
	assert.True(t, res.IsError)
	_, err := os.Stat(src)
	require.NoError(t, err)

	dst := filepath.Join(root, "moved.txt")
	res = call(t, cs, "move_file", map[string]any{"source": src, "destination": dst})
	require.False(t, res.IsError, text(t, res))

	res = call(t, cs, "search_files", map[string]any{"path": root, "pattern": "*.txt"})
	require.False(t, res.IsError)
	assert.Equal(t, dst, text(t, res))

	res = call(t, cs, "search_files", map[string]any{"path": root, "pattern": "*.go"})
	require.False(t, res.IsError)
	assert.Equal(t, "No matches found", text(t, res))
}

func TestFilesystemToolSet_SnakeCaseParameters(t *testing.T) {
	cs, root, _ := newFilesystemSession(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "build", "out.txt"), nil, 0o644))
	keep := filepath.Join(root, "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("one\ntwo\n"), 0o644))

	res := call(t, cs, "search_files", map[string]any{
		"path":             root,
		"pattern":          "*.txt",
		"exclude_patterns": []string{"build"},
	})
	require.False(t, res.IsError, text(t, res))
	assert.Equal(t, keep, text(t, res))

	res = call(t, cs, "edit_file", map[string]any{
		"path":    keep,
		"edits":   []map[string]any{{"oldText": "two", "newText": "TWO"}},
		"dry_run": true,
	})
	require.False(t, res.IsError, text(t, res))
	assert.True(t, strings.HasPrefix(text(t, res), "Dry run"))

	data, err := os.ReadFile(keep)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestFilesystemToolSet_GetFileInfo(t *testing.T) {
	cs, root, _ := newFilesystemSession(t)
	target := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(target, []byte("12345"), 0o640))
	require.NoError(t, os.Chmod(target, 0o640))

	res := call(t, cs, "get_file_info", map[string]any{"path": target})
	require.False(t, res.IsError)
	out := text(t, res)
	assert.Contains(t, out, `"size": 5`)
	assert.Contains(t, out, `"is_file": true`)
	assert.Contains(t, out, `"permissions": "640"`)
}

func TestTerminalToolSet(t *testing.T) {
	workspace := t.TempDir()
	cfg := config.DefaultConfig()
	fsys := fs.NewOSFileSystem()
	resolver := path.NewResolver(workspace, "", workspace)

	term, err := NewTerminalToolSet(fsys, resolver, executor.NewOSCommandExecutor(cfg), cfg.Terminal.Shell)
	require.NoError(t, err)
	cs := connect(t, NewFilesystemToolSet(fsys, resolver, cfg), term)

	names := toolNames(t, cs)
	assert.Contains(t, names, "run_command")
	assert.Contains(t, names, "delete_file")
	assert.Contains(t, names, "list_files")
	assert.Contains(t, names, "read_file")

	t.Run("run_command uses workspace as working directory", func(t *testing.T) {
		res := call(t, cs, "run_command", map[string]any{"command": "pwd"})
		require.False(t, res.IsError, text(t, res))
		assert.Equal(t, workspace+"\n", text(t, res))
	})

	t.Run("non-zero exit returns stderr", func(t *testing.T) {
		res := call(t, cs, "run_command", map[string]any{"command": "echo oops >&2; exit 3"})
		require.False(t, res.IsError)
		assert.Equal(t, "oops\n", text(t, res))
	})

	t.Run("relative paths resolve in workspace", func(t *testing.T) {
		res := call(t, cs, "write_file", map[string]any{"path": "w.txt", "content": "x"})
		require.False(t, res.IsError, text(t, res))

		res = call(t, cs, "list_files", map[string]any{})
		require.False(t, res.IsError)
		assert.Equal(t, "w.txt", text(t, res))

		res = call(t, cs, "delete_file", map[string]any{"path": "w.txt"})
		require.False(t, res.IsError, text(t, res))
		_, err := os.Stat(filepath.Join(workspace, "w.txt"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete outside workspace denied", func(t *testing.T) {
		res := call(t, cs, "delete_file", map[string]any{"path": "../escape.txt"})
		assert.True(t, res.IsError)
		assert.Contains(t, text(t, res), "access denied")
	})
}
