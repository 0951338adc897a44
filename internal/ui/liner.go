package ui

import (
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// LinerReader is a line editor with persistent history.
type LinerReader struct {
	state       *liner.State
	historyFile string
}

// NewLinerReader puts the terminal in line-editing mode and loads history
// from historyFile if it exists. An empty historyFile disables persistence.
// Ctrl+C aborts the prompt.
func NewLinerReader(historyFile string) *LinerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	r := &LinerReader{state: state, historyFile: historyFile}
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := state.ReadHistory(f); err != nil {
				logrus.WithError(err).Debug("failed to read history")
			}
			f.Close()
		}
	}
	return r
}

func (r *LinerReader) Prompt(prompt string) (string, error) {
	return r.state.Prompt(prompt)
}

func (r *LinerReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

// Close saves history and restores the terminal.
func (r *LinerReader) Close() error {
	if r.historyFile != "" {
		if err := r.saveHistory(); err != nil {
			logrus.WithError(err).Warn("failed to save history")
		}
	}
	return r.state.Close()
}

func (r *LinerReader) saveHistory() error {
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = r.state.WriteHistory(f)
	return err
}
