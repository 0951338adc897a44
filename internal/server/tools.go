package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var ListAllowedDirectories = &mcp.Tool{
	Name:        "list_allowed_directories",
	Description: `Returns the directories this server is allowed to access. Every path argument of every other tool must lie inside one of them.`,
}

var ReadFile = &mcp.Tool{
	Name:        "read_file",
	Description: `Reads and returns the complete text content of a file.`,
}

var WriteFile = &mcp.Tool{
	Name:        "write_file",
	Description: `Creates a new file or overwrites an existing one with the given content. Missing parent directories are created.`,
}

var EditFile = &mcp.Tool{
	Name: "edit_file",
	Description: `Edits a text file line by line. For each edit, in order, the first line exactly equal to oldText is replaced with newText. ` +
		`Fails without writing anything if any oldText matches no line. Set dry_run to preview the result. Returns the new content and a unified diff.`,
}

var CreateDirectory = &mcp.Tool{
	Name:        "create_directory",
	Description: `Creates a directory, including missing parents. Succeeds if the directory already exists.`,
}

var ListDirectory = &mcp.Tool{
	Name:        "list_directory",
	Description: `Lists the entries directly inside a directory, each marked [DIR] or [FILE].`,
}

var DirectoryTree = &mcp.Tool{
	Name:        "directory_tree",
	Description: `Returns a recursive JSON tree of a directory. Each node has a name, a type (file or directory) and, for directories, children.`,
}

var MoveFile = &mcp.Tool{
	Name:        "move_file",
	Description: `Moves or renames a file or directory. Both source and destination must be inside the allowed directories.`,
}

var SearchFiles = &mcp.Tool{
	Name: "search_files",
	Description: `Recursively finds files whose name matches a glob pattern (e.g. *.txt). ` +
		`Directories whose path relative to the search root matches an exclude pattern are skipped along with their contents.`,
}

var GetFileInfo = &mcp.Tool{
	Name:        "get_file_info",
	Description: `Returns metadata about a file or directory: size, created/modified/accessed times, type and permissions.`,
}

var RunCommand = &mcp.Tool{
	Name: "run_command",
	Description: `Runs a shell command with the workspace directory as working directory and returns its output. ` +
		`Only the working directory is confined; stay inside the workspace.`,
}

var DeleteFile = &mcp.Tool{
	Name:        "delete_file",
	Description: `Deletes a single file from the workspace. Directories are refused.`,
}

var ListFiles = &mcp.Tool{
	Name:        "list_files",
	Description: `Lists the names of entries in a workspace directory, the workspace root by default. Directory names end with "/".`,
}
