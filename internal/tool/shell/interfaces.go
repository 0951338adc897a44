package shell

import (
	"context"

	"github.com/Cyclone1070/mcpbox/internal/tool/service/executor"
)

// commandExecutor defines the interface for running processes.
type commandExecutor interface {
	Run(ctx context.Context, cmd []string, dir string, env []string) (*executor.Result, error)
}
