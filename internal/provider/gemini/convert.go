package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Cyclone1070/mcpbox/internal/provider"
	"github.com/Cyclone1070/mcpbox/internal/tool"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// toGeminiContents converts messages to Gemini contents. Tool results are
// sent with the user role, the only non-model role the API accepts.
func toGeminiContents(messages []provider.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		if content := toGeminiContent(msg); content != nil {
			contents = append(contents, content)
		}
	}
	return contents
}

func toGeminiContent(msg provider.Message) *genai.Content {
	role := "user"
	if msg.Role == provider.RoleModel {
		role = "model"
	}

	parts := make([]*genai.Part, 0, len(msg.Parts))
	for _, part := range msg.Parts {
		switch {
		case part.ToolCall != nil:
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					ID:   part.ToolCall.ID,
					Name: part.ToolCall.Name,
					Args: part.ToolCall.Args,
				},
			})
		case part.ToolResult != nil:
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       part.ToolResult.ID,
					Name:     part.ToolResult.Name,
					Response: part.ToolResult.Response,
				},
			})
		case part.Text != "":
			parts = append(parts, genai.NewPartFromText(part.Text))
		}
	}

	// Skip empty messages
	if len(parts) == 0 {
		return nil
	}

	return &genai.Content{Role: role, Parts: parts}
}

// defaultSafetySettings turns the safety filters off; the sandbox, not the
// model, is the enforcement layer.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategorySexuallyExplicit,
			Threshold: genai.HarmBlockThresholdOff,
		},
	}
}

// toGeminiTools packs every declaration into a single Gemini tool.
func toGeminiTools(decls []tool.Declaration) []*genai.Tool {
	if len(decls) == 0 {
		return nil
	}

	functionDeclarations := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, d := range decls {
		fd := &genai.FunctionDeclaration{
			Name:        d.Name,
			Description: d.Description,
		}
		if d.Parameters != nil {
			fd.Parameters = toGeminiSchema(d.Parameters)
		}
		functionDeclarations = append(functionDeclarations, fd)
	}

	return []*genai.Tool{
		{FunctionDeclarations: functionDeclarations},
	}
}

// toGeminiSchema converts a Schema recursively.
func toGeminiSchema(s *tool.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toGeminiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
		Items:       toGeminiSchema(s.Items),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGeminiSchema(prop)
		}
	}

	return out
}

func toGeminiType(t tool.Type) genai.Type {
	switch t {
	case tool.TypeString:
		return genai.TypeString
	case tool.TypeNumber:
		return genai.TypeNumber
	case tool.TypeInteger:
		return genai.TypeInteger
	case tool.TypeBoolean:
		return genai.TypeBoolean
	case tool.TypeArray:
		return genai.TypeArray
	case tool.TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// fromGeminiResponse converts the first candidate into a model message,
// keeping text and function-call parts in order.
func fromGeminiResponse(resp *genai.GenerateContentResponse) (*provider.Message, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, &provider.ProviderError{
				Code:    provider.ErrorCodeContentBlocked,
				Message: fmt.Sprintf("prompt blocked: %s", resp.PromptFeedback.BlockReason),
			}
		}
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    "empty response",
			Underlying: provider.ErrNoCandidates,
		}
	}

	candidate := resp.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeContentBlocked,
			Message: "content blocked by safety filters",
		}
	}

	if candidate.FinishReason == genai.FinishReasonMaxTokens {
		logrus.Warn("model response truncated at max tokens")
	}

	msg := &provider.Message{Role: provider.RoleModel}
	if candidate.Content == nil {
		return msg, nil
	}

	for _, part := range candidate.Content.Parts {
		switch {
		case part == nil || part.Thought:
			continue
		case part.FunctionCall != nil:
			msg.Parts = append(msg.Parts, provider.Part{
				ToolCall: &provider.ToolCall{
					ID:   part.FunctionCall.ID,
					Name: part.FunctionCall.Name,
					Args: part.FunctionCall.Args,
				},
			})
		case part.Text != "":
			msg.Parts = append(msg.Parts, provider.TextPart(part.Text))
		}
	}

	return msg, nil
}

// mapGeminiError maps Gemini API errors to provider errors.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	code, message, ok := apiErrorDetails(err)
	if !ok {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return &provider.ProviderError{
			Code:       provider.ErrorCodeNetwork,
			Message:    "network error",
			Underlying: err,
			Retryable:  true,
		}
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeAuth,
			Message:    "authentication failed",
			Underlying: err,
		}
	case http.StatusTooManyRequests:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeRateLimit,
			Message:    "rate limit exceeded",
			Underlying: err,
			Retryable:  true,
		}
	case http.StatusBadRequest, http.StatusNotFound:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    fmt.Sprintf("invalid request: %s", message),
			Underlying: err,
		}
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeUnavailable,
			Message:    "service unavailable",
			Underlying: err,
			Retryable:  true,
		}
	default:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeNetwork,
			Message:    fmt.Sprintf("API error: %s", message),
			Underlying: err,
			Retryable:  true,
		}
	}
}

// apiErrorDetails extracts the status code from either form of genai.APIError.
func apiErrorDetails(err error) (int, string, bool) {
	var ptr *genai.APIError
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Code, ptr.Message, true
	}
	var val genai.APIError
	if errors.As(err, &val) {
		return val.Code, val.Message, true
	}
	return 0, "", false
}
