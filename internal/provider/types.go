package provider

// Role identifies who produced a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
	RoleTool  Role = "tool"
)

// Message is one entry of a conversation turn. Parts keep the order the
// model produced them in.
type Message struct {
	Role  Role
	Parts []Part
}

// Part holds exactly one of Text, ToolCall or ToolResult.
type Part struct {
	Text       string
	ToolCall   *ToolCall
	ToolResult *ToolResult
}

// ToolCall is a function-call request emitted by the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResult answers a ToolCall. Response is {"result": ...} on success and
// {"error": message} on failure.
type ToolResult struct {
	ID       string
	Name     string
	Response map[string]any
}

// Failed reports whether the result carries an error.
func (r *ToolResult) Failed() bool {
	_, ok := r.Response["error"]
	return ok
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// UserMessage builds a single-text user message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Parts: []Part{TextPart(text)}}
}
