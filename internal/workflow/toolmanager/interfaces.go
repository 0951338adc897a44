package toolmanager

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolClient is the transport to the tool server.
type toolClient interface {
	ListTools(ctx context.Context) ([]*mcp.Tool, error)
	CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error)
}
