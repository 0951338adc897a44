package config

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Validate checks config values for life correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Provider.Model) == "" {
		errs = append(errs, "provider.model must not be empty")
	}
	if c.Provider.RequestsPerMinute < 0 {
		errs = append(errs, "provider.requests_per_minute must be >= 0")
	}

	if c.Workflow.MaxRounds < 1 {
		errs = append(errs, "workflow.max_rounds must be >= 1")
	}

	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.MaxCommandOutputSize < 1 {
		errs = append(errs, "tools.max_command_output_size must be >= 1")
	}

	if strings.TrimSpace(c.Terminal.Workspace) == "" {
		errs = append(errs, "terminal.workspace must not be empty")
	}
	if argv, err := shellwords.Parse(c.Terminal.Shell); err != nil || len(argv) == 0 {
		errs = append(errs, "terminal.shell must be a non-empty command line")
	}

	if c.UI.WordWrap < 0 {
		errs = append(errs, "ui.word_wrap must be >= 0")
	}

	if len(errs) > 0 {
		return &ConfigError{Reason: fmt.Sprintf("config validation failed: %v", errs)}
	}

	return nil
}
