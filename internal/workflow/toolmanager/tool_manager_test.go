package toolmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/Cyclone1070/mcpbox/internal/provider"
	"github.com/Cyclone1070/mcpbox/internal/workflow"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	tools    []*mcp.Tool
	listErr  error
	callFunc func(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error)
	calls    []string
}

func (m *mockClient) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	return m.tools, m.listErr
}

func (m *mockClient) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	m.calls = append(m.calls, name)
	if m.callFunc != nil {
		return m.callFunc(ctx, name, args)
	}
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: "ok"}}}, nil
}

func newManager(t *testing.T, client *mockClient) *ToolManager {
	t.Helper()
	if client.tools == nil {
		client.tools = []*mcp.Tool{
			{Name: "write_file", InputSchema: map[string]any{"type": "object"}},
			{Name: "read_file", InputSchema: map[string]any{"type": "object"}},
		}
	}
	tm, err := New(context.Background(), client)
	require.NoError(t, err)
	return tm
}

func TestNew_DeclarationsSortedByName(t *testing.T) {
	tm := newManager(t, &mockClient{})

	assert.Equal(t, []string{"read_file", "write_file"}, tm.Names())
	assert.Len(t, tm.Declarations(), 2)
}

func TestNew_ListError(t *testing.T) {
	_, err := New(context.Background(), &mockClient{listErr: errors.New("pipe closed")})
	assert.EqualError(t, err, "pipe closed")
}

func TestExecute_Success(t *testing.T) {
	var gotArgs map[string]any
	client := &mockClient{
		callFunc: func(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
			gotArgs = args
			return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: "hello"}}}, nil
		},
	}
	tm := newManager(t, client)
	events := make(chan workflow.Event, 4)

	res := tm.Execute(context.Background(), provider.ToolCall{ID: "c1", Name: "read_file", Args: map[string]any{"path": "a.txt"}}, events)

	assert.Equal(t, provider.ToolResult{ID: "c1", Name: "read_file", Response: map[string]any{"result": "hello"}}, res)
	assert.Equal(t, map[string]any{"path": "a.txt"}, gotArgs)
	assert.Equal(t, workflow.ToolStartEvent{ToolName: "read_file", Args: `{"path":"a.txt"}`}, <-events)
	assert.Equal(t, workflow.ToolEndEvent{ToolName: "read_file"}, <-events)
}

func TestExecute_NilArgsSentAsEmptyObject(t *testing.T) {
	var gotArgs map[string]any
	client := &mockClient{
		callFunc: func(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
			gotArgs = args
			return &mcp.CallToolResult{}, nil
		},
	}
	tm := newManager(t, client)

	res := tm.Execute(context.Background(), provider.ToolCall{Name: "read_file"}, nil)
	assert.NotNil(t, gotArgs)
	assert.Equal(t, map[string]any{"result": ""}, res.Response)
}

func TestExecute_ToolErrorCaptured(t *testing.T) {
	client := &mockClient{
		callFunc: func(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: "access denied: /etc/passwd is outside allowed directories"}},
			}, nil
		},
	}
	tm := newManager(t, client)
	events := make(chan workflow.Event, 4)

	res := tm.Execute(context.Background(), provider.ToolCall{Name: "read_file", Args: map[string]any{"path": "/etc/passwd"}}, events)

	assert.True(t, res.Failed())
	assert.Equal(t, "access denied: /etc/passwd is outside allowed directories", res.Response["error"])
	<-events
	assert.Equal(t, workflow.ToolEndEvent{ToolName: "read_file", Failed: true}, <-events)
}

func TestExecute_TransportErrorCaptured(t *testing.T) {
	client := &mockClient{
		callFunc: func(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
			return nil, errors.New("transport call read_file: connection closed")
		},
	}
	tm := newManager(t, client)

	res := tm.Execute(context.Background(), provider.ToolCall{Name: "read_file"}, nil)
	assert.Equal(t, map[string]any{"error": "transport call read_file: connection closed"}, res.Response)
}

func TestExecute_UnknownToolCaptured(t *testing.T) {
	client := &mockClient{}
	tm := newManager(t, client)

	res := tm.Execute(context.Background(), provider.ToolCall{Name: "rm_rf"}, nil)

	assert.Equal(t, map[string]any{"error": "unknown tool: rm_rf"}, res.Response)
	assert.Empty(t, client.calls, "unknown tools never reach the transport")
}

func TestContentText(t *testing.T) {
	res := &mcp.CallToolResult{Content: []mcp.Content{
		&mcp.TextContent{Text: "a"},
		&mcp.TextContent{Text: "b"},
	}}
	assert.Equal(t, "a\nb", contentText(res))

	res = &mcp.CallToolResult{StructuredContent: map[string]any{"n": 1}}
	assert.Equal(t, `{"n":1}`, contentText(res))
}
