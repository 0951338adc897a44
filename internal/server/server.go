// Package server exposes the sandboxed operations as MCP tools.
package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported in the MCP handshake; it is overridden at link time.
var Version = "dev"

// Registrar adds a group of tools to a server.
type Registrar interface {
	RegisterServer(server *mcp.Server) error
}

// New creates an MCP server named name and registers every tool set on it.
func New(name, instructions string, sets ...Registrar) (*mcp.Server, error) {
	impl := &mcp.Implementation{
		Name:    name,
		Title:   "mcpbox " + name,
		Version: Version,
	}
	opts := &mcp.ServerOptions{
		Instructions: instructions,
	}
	server := mcp.NewServer(impl, opts)
	for _, s := range sets {
		if err := s.RegisterServer(server); err != nil {
			return nil, err
		}
	}
	return server, nil
}
