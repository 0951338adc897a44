package loop

import (
	"context"

	"github.com/Cyclone1070/mcpbox/internal/provider"
	"github.com/Cyclone1070/mcpbox/internal/tool"
	"github.com/Cyclone1070/mcpbox/internal/workflow"
)

// llmProvider communicates with an LLM.
type llmProvider interface {
	// Generate sends messages to the LLM and returns its response.
	Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error)
}

// toolManager publishes tool declarations and executes calls.
type toolManager interface {
	// Declarations returns all tool schemas for the LLM.
	Declarations() []tool.Declaration

	// Execute runs a tool call. Failures are reported inside the result.
	// It emits ToolStartEvent and ToolEndEvent to the events channel.
	Execute(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event) provider.ToolResult
}
