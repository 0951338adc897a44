package workflow

// Event is the interface for all workflow events.
// UI handles events via type switch.
type Event interface {
	isEvent()
}

// TextEvent is emitted when the model produces text output.
type TextEvent struct {
	Text string
}

func (TextEvent) isEvent() {}

// ThinkingEvent is emitted before each completion request.
type ThinkingEvent struct{}

func (ThinkingEvent) isEvent() {}

// DoneEvent is emitted when a query completes, successfully or not.
type DoneEvent struct{}

func (DoneEvent) isEvent() {}

// ToolStartEvent is emitted when a tool invocation begins.
type ToolStartEvent struct {
	ToolName string
	Args     string // JSON-encoded arguments
}

func (ToolStartEvent) isEvent() {}

// ToolEndEvent is emitted when a tool invocation completes.
type ToolEndEvent struct {
	ToolName string
	Failed   bool
}

func (ToolEndEvent) isEvent() {}
