package ui

import "context"

// lineReader reads one line of user input per prompt.
// It returns io.EOF when input ends.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
}

// queryProcessor answers one user query.
type queryProcessor interface {
	ProcessQuery(ctx context.Context, text string) (string, error)
}

// MarkdownRenderer turns model output into terminal text.
type MarkdownRenderer interface {
	Render(in string) (string, error)
}
