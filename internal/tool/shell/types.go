package shell

import (
	"strings"
)

type RunCommandRequest struct {
	Command string `json:"command" jsonschema:"shell command line to run in the workspace directory"`
}

func (r RunCommandRequest) Validate() error {
	if strings.TrimSpace(r.Command) == "" {
		return ErrCommandRequired
	}
	return nil
}

type RunCommandResponse struct {
	Stdout    string `json:"stdout"`
	Stderr    string `json:"stderr"`
	ExitCode  int    `json:"exit_code"`
	Truncated bool   `json:"truncated,omitempty"`
}

// Output is stdout for a successful command and stderr otherwise,
// falling back to whichever stream has content.
func (r *RunCommandResponse) Output() string {
	if r.ExitCode != 0 && r.Stderr != "" {
		return r.Stderr
	}
	if r.Stdout != "" {
		return r.Stdout
	}
	return r.Stderr
}
