package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

// runFunc is the shape shared by every operation in internal/tool.
type runFunc[In, Out any] func(ctx context.Context, req In) (*Out, error)

// handlerFor adapts an operation to an MCP tool handler. Errors are returned
// to the SDK, which reports them to the caller as a tool error result; text
// renders the success payload for the text content block.
func handlerFor[In, Out any](name string, run runFunc[In, Out], text func(*Out) string) mcp.ToolHandlerFor[In, *Out] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, args In) (*mcp.CallToolResult, *Out, error) {
		log := logrus.WithField("tool", name)
		log.Debugf("call with %+v", args)

		res, err := run(ctx, args)
		if err != nil {
			log.WithError(err).Info("tool failed")
			return nil, nil, err
		}

		return &mcp.CallToolResult{
			Content:           []mcp.Content{&mcp.TextContent{Text: text(res)}},
			StructuredContent: res,
		}, res, nil
	}
}

// jsonText renders v as indented JSON.
func jsonText[T any](v *T) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(b)
}
