package executor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/Cyclone1070/mcpbox/internal/config"
)

// Result represents the outcome of a command execution.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// OSCommandExecutor implements command execution using os/exec for real system commands.
type OSCommandExecutor struct {
	config *config.Config
}

// NewOSCommandExecutor creates a new OSCommandExecutor with injected config.
func NewOSCommandExecutor(cfg *config.Config) *OSCommandExecutor {
	if cfg == nil {
		panic("cfg is required")
	}
	return &OSCommandExecutor{config: cfg}
}

// Run executes a command and returns the result. It buffers output internally.
//
// No timeout is applied: a command that never exits blocks until ctx is cancelled.
// A non-zero exit is reported through Result.ExitCode together with the *exec.ExitError.
func (f *OSCommandExecutor) Run(ctx context.Context, command []string, dir string, env []string) (*Result, error) {
	if len(command) == 0 {
		return nil, os.ErrInvalid
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = nil

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	stdoutStr, stderrStr, truncated := f.collectOutput(stdoutPipe, stderrPipe)

	err = cmd.Wait()
	exitCode := 0
	if err != nil {
		exitCode = f.getExitCode(err)
	}

	return &Result{
		Stdout:    stdoutStr,
		Stderr:    stderrStr,
		ExitCode:  exitCode,
		Truncated: truncated,
	}, err
}

func (f *OSCommandExecutor) collectOutput(stdout, stderr io.Reader) (string, string, bool) {
	maxBytes := int(f.config.Tools.MaxCommandOutputSize)

	stdoutCollector := newCollector(maxBytes, 8000)
	stderrCollector := newCollector(maxBytes, 8000)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, _ = io.Copy(stdoutCollector, stdout)
	}()

	go func() {
		defer wg.Done()
		_, _ = io.Copy(stderrCollector, stderr)
	}()

	wg.Wait()

	truncated := stdoutCollector.Truncated() || stderrCollector.Truncated()
	return stdoutCollector.String(), stderrCollector.String(), truncated
}

func (f *OSCommandExecutor) getExitCode(err error) int {
	if err == nil {
		return 0
	}
	type exitCoder interface {
		ExitCode() int
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}
