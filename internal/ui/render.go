package ui

import (
	"github.com/charmbracelet/glamour"
)

// NewMarkdownRenderer renders markdown with the terminal's style, wrapping at wordWrap columns.
func NewMarkdownRenderer(wordWrap int) (MarkdownRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// PlainRenderer prints model output unchanged.
type PlainRenderer struct{}

func (PlainRenderer) Render(in string) (string, error) {
	return in + "\n", nil
}
