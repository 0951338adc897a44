package toolmanager

import (
	"encoding/json"
	"fmt"

	"github.com/Cyclone1070/mcpbox/internal/tool"
	"github.com/mitchellh/mapstructure"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// presentationKeys are schema fields the model backend rejects.
var presentationKeys = []string{"title", "$schema", "$id", "additionalProperties"}

// CleanSchema returns a copy of schema with presentation-only fields removed
// at every level and union types such as ["null","array"] narrowed to their
// first non-null member. The input is not modified and CleanSchema(CleanSchema(s))
// equals CleanSchema(s).
func CleanSchema(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}

	out := make(map[string]any, len(schema))
	for k, v := range schema {
		out[k] = v
	}
	for _, k := range presentationKeys {
		delete(out, k)
	}

	if types, ok := out["type"].([]any); ok {
		out["type"] = firstNonNull(types)
	}

	if props, ok := out["properties"].(map[string]any); ok {
		cleaned := make(map[string]any, len(props))
		for name, p := range props {
			if pm, ok := p.(map[string]any); ok {
				cleaned[name] = CleanSchema(pm)
			} else {
				cleaned[name] = p
			}
		}
		out["properties"] = cleaned
	}

	if items, ok := out["items"].(map[string]any); ok {
		out["items"] = CleanSchema(items)
	}

	return out
}

func firstNonNull(types []any) any {
	for _, t := range types {
		if s, ok := t.(string); ok && s != "null" {
			return s
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return nil
}

// ToDescriptors converts listed tools to declarations for the model backend.
func ToDescriptors(tools []*mcp.Tool) ([]tool.Declaration, error) {
	decls := make([]tool.Declaration, 0, len(tools))
	for _, t := range tools {
		params, err := toSchema(t.InputSchema)
		if err != nil {
			return nil, &SchemaError{Tool: t.Name, Cause: err}
		}
		decls = append(decls, tool.Declaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		})
	}
	return decls, nil
}

// toSchema normalises whatever the SDK holds for an input schema to a
// generic map, cleans it and decodes it.
func toSchema(input any) (*tool.Schema, error) {
	if input == nil {
		return nil, nil
	}

	raw, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	if generic == nil {
		return nil, nil
	}

	var schema tool.Schema
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Result:           &schema,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(CleanSchema(generic)); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if schema.Type == "" {
		schema.Type = tool.TypeObject
	}
	return &schema, nil
}
