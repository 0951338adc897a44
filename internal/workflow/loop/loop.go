// Package loop runs one query through the model, executing the tool calls
// it requests until it answers with text only.
package loop

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cyclone1070/mcpbox/internal/provider"
	"github.com/Cyclone1070/mcpbox/internal/workflow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Loop struct {
	provider  llmProvider
	tools     toolManager
	events    chan<- workflow.Event
	framing   string
	maxRounds int
}

// NewLoop creates a loop. framing is prepended to every query; maxRounds
// caps completion requests per query, 0 meaning no cap. events may be nil.
func NewLoop(provider llmProvider, tools toolManager, events chan<- workflow.Event, framing string, maxRounds int) *Loop {
	if provider == nil {
		panic("provider is required")
	}
	if tools == nil {
		panic("tools is required")
	}
	return &Loop{
		provider:  provider,
		tools:     tools,
		events:    events,
		framing:   framing,
		maxRounds: maxRounds,
	}
}

// query is the state of a single ProcessQuery call. Nothing survives it.
type query struct {
	*Loop
	ctx    context.Context
	log    *logrus.Entry
	prompt provider.Message
	rounds int
}

// ProcessQuery answers query and returns every text fragment the model
// produced, newline-joined.
//
// Parts of a response are handled in order. Text is collected. A tool call
// is executed, and the model is asked to follow up with only the prompt, the
// call and its result as context; the parts of that follow-up are handled
// before the remaining parts of the response that contained the call. The
// query ends when no parts are pending.
//
// A failed tool call does not end the query: the model sees the error in the
// tool result. Provider errors and the round cap do end it; the text
// gathered so far is returned with the error.
func (l *Loop) ProcessQuery(ctx context.Context, text string) (string, error) {
	q := &query{
		Loop:   l,
		ctx:    ctx,
		log:    logrus.WithField("query_id", uuid.NewString()),
		prompt: provider.UserMessage(l.framing + text),
	}

	defer l.emit(workflow.DoneEvent{})

	var output []string

	resp, err := q.generate([]provider.Message{q.prompt})
	if err != nil {
		return "", err
	}

	pending := [][]provider.Part{resp.Parts}
	for len(pending) > 0 {
		top := len(pending) - 1
		if len(pending[top]) == 0 {
			pending = pending[:top]
			continue
		}
		part := pending[top][0]
		pending[top] = pending[top][1:]

		if part.ToolCall == nil {
			if part.Text != "" {
				output = append(output, part.Text)
				l.emit(workflow.TextEvent{Text: part.Text})
			}
			continue
		}

		q.log.WithField("tool", part.ToolCall.Name).Info("calling tool")
		result := l.tools.Execute(ctx, *part.ToolCall, l.events)

		followUp := []provider.Message{
			q.prompt,
			{Role: provider.RoleModel, Parts: []provider.Part{part}},
			{Role: provider.RoleTool, Parts: []provider.Part{{ToolResult: &result}}},
		}
		resp, err := q.generate(followUp)
		if err != nil {
			return strings.Join(output, "\n"), err
		}
		pending = append(pending, resp.Parts)
	}

	q.log.WithField("rounds", q.rounds).Debug("query done")
	return strings.Join(output, "\n"), nil
}

func (q *query) generate(messages []provider.Message) (*provider.Message, error) {
	if err := q.ctx.Err(); err != nil {
		return nil, err
	}
	if q.maxRounds > 0 && q.rounds >= q.maxRounds {
		return nil, &MaxRoundsError{Rounds: q.maxRounds}
	}
	q.rounds++

	q.emit(workflow.ThinkingEvent{})
	q.log.WithField("round", q.rounds).Debug("requesting completion")

	resp, err := q.provider.Generate(q.ctx, messages, q.tools.Declarations())
	if err != nil {
		return nil, fmt.Errorf("provider.Generate: %w", err)
	}
	return resp, nil
}

func (l *Loop) emit(e workflow.Event) {
	if l.events != nil {
		l.events <- e
	}
}
