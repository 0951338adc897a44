// Package ui is the interactive line-oriented front end.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/mcpbox/internal/workflow"
	"github.com/peterh/liner"
)

const prompt = "Query: "

// REPL reads queries until the user types quit or input ends.
type REPL struct {
	in        lineReader
	out       io.Writer
	processor queryProcessor
	renderer  MarkdownRenderer
	events    <-chan workflow.Event
	done      chan struct{}
}

// NewREPL creates a REPL. events is the channel the query processor emits
// on; it may be nil. The REPL must be its only reader.
func NewREPL(in lineReader, out io.Writer, processor queryProcessor, renderer MarkdownRenderer, events <-chan workflow.Event) *REPL {
	if in == nil {
		panic("in is required")
	}
	if processor == nil {
		panic("processor is required")
	}
	if renderer == nil {
		renderer = PlainRenderer{}
	}
	return &REPL{
		in:        in,
		out:       out,
		processor: processor,
		renderer:  renderer,
		events:    events,
		done:      make(chan struct{}),
	}
}

// Run loops until quit, EOF, an aborted prompt or ctx cancellation.
// Query failures are printed and do not end the session.
func (r *REPL) Run(ctx context.Context) error {
	if r.events != nil {
		go r.printEvents()
	}

	fmt.Fprintln(r.out, bannerStyle.Render("mcpbox started. Type 'quit' to exit."))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.in.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(r.out)
				return nil
			}
			return err
		}

		query := strings.TrimSpace(line)
		if query == "" {
			continue
		}
		r.in.AppendHistory(query)
		if strings.EqualFold(query, "quit") {
			return nil
		}

		r.answer(ctx, query)
	}
}

func (r *REPL) answer(ctx context.Context, query string) {
	text, err := r.processor.ProcessQuery(ctx, query)
	if r.events != nil {
		<-r.done
	}

	if text != "" {
		rendered, rerr := r.renderer.Render(text)
		if rerr != nil {
			rendered = text + "\n"
		}
		fmt.Fprint(r.out, "\n"+rendered)
	}
	if err != nil {
		fmt.Fprintln(r.out, errorStyle.Render("Error: "+err.Error()))
	}
}

// printEvents shows tool calls as they happen and signals the end of each query.
func (r *REPL) printEvents() {
	for e := range r.events {
		switch e := e.(type) {
		case workflow.ToolStartEvent:
			fmt.Fprintln(r.out, toolStyle.Render(fmt.Sprintf("\n[Calling tool: %s with args %s]", e.ToolName, e.Args)))
		case workflow.ToolEndEvent:
			if e.Failed {
				fmt.Fprintln(r.out, toolFailedStyle.Render(fmt.Sprintf("[Tool %s failed]", e.ToolName)))
			}
		case workflow.DoneEvent:
			r.done <- struct{}{}
		}
	}
}
