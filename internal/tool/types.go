package tool

// Type represents JSON Schema types.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Schema is the subset of JSON Schema the model backend understands.
// Fields outside this subset (title, $schema, additionalProperties...) are dropped.
type Schema struct {
	Type        Type               `json:"type" mapstructure:"type"`
	Description string             `json:"description,omitempty" mapstructure:"description"`
	Properties  map[string]*Schema `json:"properties,omitempty" mapstructure:"properties"`
	Required    []string           `json:"required,omitempty" mapstructure:"required"`
	Items       *Schema            `json:"items,omitempty" mapstructure:"items"`
	Enum        []string           `json:"enum,omitempty" mapstructure:"enum"`
}

// Declaration declares a tool's function signature for the LLM.
type Declaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Parameters  *Schema `json:"parameters,omitempty"`
}
