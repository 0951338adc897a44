package server

import (
	"strings"

	"github.com/Cyclone1070/mcpbox/internal/tool/directory"
	"github.com/Cyclone1070/mcpbox/internal/tool/file"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/executor"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/fs"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/path"
	"github.com/Cyclone1070/mcpbox/internal/tool/shell"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TerminalInstructions is sent to clients of the terminal server.
const TerminalInstructions = `All operations are confined to a single workspace directory. ` +
	`run_command executes in that directory; do not reference paths outside it.`

// TerminalToolSet adds command execution and workspace housekeeping to the
// filesystem tools. It is meant to be registered next to a FilesystemToolSet
// whose resolver has the workspace as its only root.
type TerminalToolSet struct {
	run    *shell.RunCommandTool
	delete *file.DeleteFileTool
	files  *directory.ListFilesTool
}

// NewTerminalToolSet creates the terminal tools. The resolver's base directory
// is the workspace.
func NewTerminalToolSet(fsys *fs.OSFileSystem, resolver *path.Resolver, exec *executor.OSCommandExecutor, shellLine string) (*TerminalToolSet, error) {
	if fsys == nil {
		panic("fsys is required")
	}
	if resolver == nil {
		panic("resolver is required")
	}
	run, err := shell.NewRunCommandTool(exec, shellLine, resolver.BaseDir())
	if err != nil {
		return nil, err
	}
	return &TerminalToolSet{
		run:    run,
		delete: file.NewDeleteFileTool(fsys, resolver),
		files:  directory.NewListFilesTool(fsys, resolver),
	}, nil
}

func (ts *TerminalToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, RunCommand, handlerFor(RunCommand.Name, ts.run.Run, commandText))
	mcp.AddTool(server, DeleteFile, handlerFor(DeleteFile.Name, ts.delete.Run,
		(*file.DeleteFileResponse).String))
	mcp.AddTool(server, ListFiles, handlerFor(ListFiles.Name, ts.files.Run,
		func(r *directory.ListFilesResponse) string { return strings.Join(r.Files, "\n") }))
	return nil
}

func commandText(r *shell.RunCommandResponse) string {
	out := r.Output()
	if r.Truncated {
		out += "\n[output truncated]"
	}
	return out
}
