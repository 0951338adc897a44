// Package toolmanager bridges the tools listed by an MCP server to the model
// backend: it publishes their declarations and executes the calls the model
// requests, turning every outcome into a tool result.
package toolmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Cyclone1070/mcpbox/internal/provider"
	"github.com/Cyclone1070/mcpbox/internal/tool"
	"github.com/Cyclone1070/mcpbox/internal/workflow"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

// ToolManager holds the declarations of one server connection. They are
// read once by New and never change.
type ToolManager struct {
	client toolClient
	decls  []tool.Declaration
	known  map[string]bool
}

// New lists the server's tools and converts them to declarations.
func New(ctx context.Context, client toolClient) (*ToolManager, error) {
	if client == nil {
		panic("client is required")
	}

	tools, err := client.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	decls, err := ToDescriptors(tools)
	if err != nil {
		return nil, err
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})

	known := make(map[string]bool, len(decls))
	for _, d := range decls {
		known[d.Name] = true
	}
	return &ToolManager{client: client, decls: decls, known: known}, nil
}

// Declarations returns all tool declarations sorted by name.
func (m *ToolManager) Declarations() []tool.Declaration {
	return m.decls
}

// Names returns the tool names sorted.
func (m *ToolManager) Names() []string {
	names := make([]string, 0, len(m.decls))
	for _, d := range m.decls {
		names = append(names, d.Name)
	}
	return names
}

// Execute runs one tool call and always returns a result: {"result": text}
// when the tool succeeded and {"error": message} when the name is unknown,
// the transport failed or the tool reported an error.
func (m *ToolManager) Execute(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event) provider.ToolResult {
	log := logrus.WithField("tool", tc.Name)

	if events != nil {
		events <- workflow.ToolStartEvent{ToolName: tc.Name, Args: argsJSON(tc.Args)}
	}

	response := m.call(ctx, tc)

	result := provider.ToolResult{ID: tc.ID, Name: tc.Name, Response: response}
	if result.Failed() {
		log.WithField("error", response["error"]).Info("tool call failed")
	} else {
		log.Debug("tool call succeeded")
	}

	if events != nil {
		events <- workflow.ToolEndEvent{ToolName: tc.Name, Failed: result.Failed()}
	}
	return result
}

func (m *ToolManager) call(ctx context.Context, tc provider.ToolCall) map[string]any {
	if !m.known[tc.Name] {
		return errorResponse(&UnknownToolError{Name: tc.Name})
	}

	args := tc.Args
	if args == nil {
		args = map[string]any{}
	}

	res, err := m.client.CallTool(ctx, tc.Name, args)
	if err != nil {
		return errorResponse(err)
	}
	if res.IsError {
		return map[string]any{"error": contentText(res)}
	}
	return map[string]any{"result": contentText(res)}
}

func errorResponse(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}

// contentText flattens a tool result to text. Structured content is used
// only when the result carries no text blocks.
func contentText(res *mcp.CallToolResult) string {
	var parts []string
	for _, c := range res.Content {
		switch c := c.(type) {
		case *mcp.TextContent:
			parts = append(parts, c.Text)
		default:
			parts = append(parts, fmt.Sprintf("[%T omitted]", c))
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "\n")
	}
	if res.StructuredContent != nil {
		if b, err := json.Marshal(res.StructuredContent); err == nil {
			return string(b)
		}
	}
	return ""
}

func argsJSON(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	b, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(b)
}
