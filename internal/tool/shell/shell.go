package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

// RunCommandTool runs command strings through a shell in the workspace directory.
//
// The command text is opaque: paths inside it are never checked against the
// allowed roots, so only the working directory is confined. A command using
// absolute paths or ".." can reach anything the process user can. No timeout
// is applied; a hung command blocks until ctx is cancelled.
type RunCommandTool struct {
	commandExecutor commandExecutor
	shell           []string
	workspace       string
}

// NewRunCommandTool creates a RunCommandTool. shellLine is split with shell-words
// rules and the command string is appended as the final argument, e.g. "/bin/sh -c".
func NewRunCommandTool(commandExecutor commandExecutor, shellLine string, workspace string) (*RunCommandTool, error) {
	if commandExecutor == nil {
		panic("commandExecutor is required")
	}
	if workspace == "" {
		panic("workspace is required")
	}
	argv, err := shellwords.Parse(shellLine)
	if err != nil {
		return nil, &ShellConfigError{Shell: shellLine, Cause: err}
	}
	if len(argv) == 0 {
		return nil, &ShellConfigError{Shell: shellLine, Cause: ErrEmptyShell}
	}
	return &RunCommandTool{
		commandExecutor: commandExecutor,
		shell:           argv,
		workspace:       workspace,
	}, nil
}

// Run executes the command. A non-zero exit status is reported in the
// response, not as an error.
func (t *RunCommandTool) Run(ctx context.Context, req RunCommandRequest) (*RunCommandResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	argv := make([]string, 0, len(t.shell)+1)
	argv = append(argv, t.shell...)
	argv = append(argv, req.Command)

	res, err := t.commandExecutor.Run(ctx, argv, t.workspace, os.Environ())
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || res == nil {
			return nil, &ExecError{Command: req.Command, Cause: err}
		}
	}

	return &RunCommandResponse{
		Stdout:    res.Stdout,
		Stderr:    res.Stderr,
		ExitCode:  res.ExitCode,
		Truncated: res.Truncated,
	}, nil
}
