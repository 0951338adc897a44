package provider

import (
	"context"

	"github.com/Cyclone1070/mcpbox/internal/tool"
)

// Provider is a completion backend that accepts tool declarations.
type Provider interface {
	// Generate returns the model's next message for the given context.
	Generate(ctx context.Context, messages []Message, tools []tool.Declaration) (*Message, error)
}
