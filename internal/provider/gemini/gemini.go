// Package gemini implements provider.Provider on top of the Gemini API.
package gemini

import (
	"context"
	"time"

	"github.com/Cyclone1070/mcpbox/internal/provider"
	"github.com/Cyclone1070/mcpbox/internal/tool"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiProvider sends conversation turns to a Gemini model.
// Requests are paced by an optional limiter; it holds no other state.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
	limiter   *rate.Limiter
}

// New creates a provider for modelName. requestsPerMinute <= 0 disables pacing.
func New(client GeminiClient, modelName string, requestsPerMinute int) *GeminiProvider {
	if client == nil {
		panic("client is required")
	}
	p := &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
	if requestsPerMinute > 0 {
		p.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
	}
	return p
}

// Model returns the model name requests are sent to.
func (p *GeminiProvider) Model() string {
	return p.modelName
}

// Generate sends messages with the tool declarations and returns the model's reply.
func (p *GeminiProvider) Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	config := &genai.GenerateContentConfig{
		SafetySettings: defaultSafetySettings(),
		Tools:          toGeminiTools(tools),
	}

	resp, err := p.client.GenerateContent(ctx, p.modelName, toGeminiContents(messages), config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp)
}
