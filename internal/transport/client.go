// Package transport connects to an MCP tool server and exposes the two
// requests the dispatch loop needs: listing tools and calling one.
package transport

import (
	"context"
	"os"
	"os/exec"
	"sync"

	"github.com/mattn/go-shellwords"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

// ClientName is reported to servers during the handshake.
const ClientName = "mcpbox"

// Client is a connected MCP client session.
type Client struct {
	mu      sync.Mutex
	session *mcp.ClientSession
}

// Connect performs the MCP handshake over t.
func Connect(ctx context.Context, t mcp.Transport, version string) (*Client, error) {
	client := mcp.NewClient(&mcp.Implementation{Name: ClientName, Version: version}, nil)
	session, err := client.Connect(ctx, t, nil)
	if err != nil {
		return nil, &TransportError{Op: "connect", Cause: err}
	}
	return &Client{session: session}, nil
}

// Spawn starts the server described by commandLine as a subprocess and talks
// to it over its stdin/stdout. The command line is split with shell-words
// rules; the subprocess's stderr is passed through.
func Spawn(ctx context.Context, commandLine, version string) (*Client, error) {
	argv, err := shellwords.Parse(commandLine)
	if err != nil {
		return nil, &TransportError{Op: "parse server command", Cause: err}
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stderr = os.Stderr
	logrus.WithField("argv", argv).Debug("spawning tool server")

	return Connect(ctx, &mcp.CommandTransport{Command: cmd}, version)
}

// ListTools returns every tool the server offers, following pagination.
func (c *Client) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	session, err := c.current()
	if err != nil {
		return nil, err
	}

	var tools []*mcp.Tool
	params := &mcp.ListToolsParams{}
	for {
		res, err := session.ListTools(ctx, params)
		if err != nil {
			return nil, &TransportError{Op: "list tools", Cause: err}
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == "" {
			return tools, nil
		}
		params = &mcp.ListToolsParams{Cursor: res.NextCursor}
	}
}

// CallTool invokes a tool. A tool that ran and failed is reported through
// the result's IsError flag, not through err.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	session, err := c.current()
	if err != nil {
		return nil, err
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return nil, &TransportError{Op: "call " + name, Cause: err}
	}
	return res, nil
}

// Close ends the session and, for spawned servers, waits for the subprocess.
// Calling Close more than once is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.mu.Unlock()

	if session == nil {
		return nil
	}
	return session.Close()
}

func (c *Client) current() (*mcp.ClientSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil, ErrClosed
	}
	return c.session, nil
}
