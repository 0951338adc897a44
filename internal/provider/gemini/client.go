package gemini

import (
	"context"

	"google.golang.org/genai"
)

// GeminiClient is the part of the SDK the provider calls.
type GeminiClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// RealGeminiClient wraps the official SDK client to satisfy GeminiClient.
type RealGeminiClient struct {
	client *genai.Client
}

// NewRealGeminiClient creates a Gemini API client authenticated with apiKey.
func NewRealGeminiClient(ctx context.Context, apiKey string) (*RealGeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &RealGeminiClient{client: client}, nil
}

// GenerateContent calls the SDK's GenerateContent method.
func (c *RealGeminiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, config)
}
