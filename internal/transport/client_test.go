package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoArgs struct {
	Text string `json:"text" jsonschema:"text to echo"`
}

type echoResult struct {
	Text string `json:"text"`
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "v0.0.1"}, nil)
	mcp.AddTool(server, &mcp.Tool{Name: "echo", Description: "echoes text"},
		func(_ context.Context, _ *mcp.CallToolRequest, in echoArgs) (*mcp.CallToolResult, *echoResult, error) {
			if in.Text == "" {
				return nil, nil, errors.New("text is required")
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: in.Text}},
			}, &echoResult{Text: in.Text}, nil
		})

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	c, err := Connect(ctx, clientTransport, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_ListTools(t *testing.T) {
	c := newTestClient(t)

	tools, err := c.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "echo", tools[0].Name)
	assert.Equal(t, "echoes text", tools[0].Description)
}

func TestClient_CallTool(t *testing.T) {
	c := newTestClient(t)

	res, err := c.CallTool(context.Background(), "echo", map[string]any{"text": "hi"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "hi", res.Content[0].(*mcp.TextContent).Text)
}

func TestClient_CallTool_ToolFailureIsResult(t *testing.T) {
	c := newTestClient(t)

	res, err := c.CallTool(context.Background(), "echo", map[string]any{"text": ""})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestClient_CallTool_UnknownTool(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CallTool(context.Background(), "nope", map[string]any{})
	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestClient_Closed(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.ListTools(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	_, err = c.CallTool(context.Background(), "echo", nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSpawn_EmptyCommand(t *testing.T) {
	_, err := Spawn(context.Background(), "   ", "test")
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = Spawn(context.Background(), `"unterminated`, "test")
	var te *TransportError
	assert.True(t, errors.As(err, &te))
}
