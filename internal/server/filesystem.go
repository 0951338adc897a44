package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cyclone1070/mcpbox/internal/config"
	"github.com/Cyclone1070/mcpbox/internal/tool/directory"
	"github.com/Cyclone1070/mcpbox/internal/tool/file"
	"github.com/Cyclone1070/mcpbox/internal/tool/search"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/fs"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/path"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FilesystemInstructions is sent to clients of the filesystem server.
const FilesystemInstructions = `Every path must lie inside one of the allowed directories. ` +
	`Call list_allowed_directories first to learn them.`

// FilesystemToolSet is the file and directory tool set confined to the
// resolver's allowed roots.
type FilesystemToolSet struct {
	resolver *path.Resolver

	read   *file.ReadFileTool
	write  *file.WriteFileTool
	edit   *file.EditFileTool
	move   *file.MoveFileTool
	info   *file.FileInfoTool
	mkdir  *directory.CreateDirectoryTool
	list   *directory.ListDirectoryTool
	tree   *directory.DirectoryTreeTool
	search *search.SearchFilesTool
}

// NewFilesystemToolSet wires every filesystem tool to fsys and resolver.
func NewFilesystemToolSet(fsys *fs.OSFileSystem, resolver *path.Resolver, cfg *config.Config) *FilesystemToolSet {
	if fsys == nil {
		panic("fsys is required")
	}
	if resolver == nil {
		panic("resolver is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}
	return &FilesystemToolSet{
		resolver: resolver,
		read:     file.NewReadFileTool(fsys, resolver, cfg),
		write:    file.NewWriteFileTool(fsys, resolver, cfg),
		edit:     file.NewEditFileTool(fsys, resolver, cfg),
		move:     file.NewMoveFileTool(fsys, resolver),
		info:     file.NewFileInfoTool(fsys, resolver),
		mkdir:    directory.NewCreateDirectoryTool(fsys, resolver),
		list:     directory.NewListDirectoryTool(fsys, resolver),
		tree:     directory.NewDirectoryTreeTool(fsys, resolver),
		search:   search.NewSearchFilesTool(fsys, resolver),
	}
}

// AllowedDirectoriesResponse lists the canonical allowed roots.
type AllowedDirectoriesResponse struct {
	Directories []string `json:"directories"`
}

func (ts *FilesystemToolSet) listAllowedDirectories(_ context.Context, _ struct{}) (*AllowedDirectoriesResponse, error) {
	return &AllowedDirectoriesResponse{Directories: ts.resolver.Roots()}, nil
}

func (ts *FilesystemToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, ListAllowedDirectories, handlerFor(ListAllowedDirectories.Name, ts.listAllowedDirectories,
		func(r *AllowedDirectoriesResponse) string {
			return "Allowed directories:\n" + strings.Join(r.Directories, "\n")
		}))
	mcp.AddTool(server, ReadFile, handlerFor(ReadFile.Name, ts.read.Run,
		func(r *file.ReadFileResponse) string { return r.Content }))
	mcp.AddTool(server, WriteFile, handlerFor(WriteFile.Name, ts.write.Run,
		(*file.WriteFileResponse).String))
	mcp.AddTool(server, EditFile, handlerFor(EditFile.Name, ts.edit.Run, editText))
	mcp.AddTool(server, CreateDirectory, handlerFor(CreateDirectory.Name, ts.mkdir.Run,
		func(r *directory.CreateDirectoryResponse) string {
			return fmt.Sprintf("Successfully created directory %s", r.AbsolutePath)
		}))
	mcp.AddTool(server, ListDirectory, handlerFor(ListDirectory.Name, ts.list.Run, listingText))
	mcp.AddTool(server, DirectoryTree, treeHandler(ts.tree))
	mcp.AddTool(server, MoveFile, handlerFor(MoveFile.Name, ts.move.Run,
		(*file.MoveFileResponse).String))
	mcp.AddTool(server, SearchFiles, handlerFor(SearchFiles.Name, ts.search.Run,
		func(r *search.SearchFilesResponse) string {
			if len(r.Matches) == 0 {
				return "No matches found"
			}
			return strings.Join(r.Matches, "\n")
		}))
	mcp.AddTool(server, GetFileInfo, handlerFor(GetFileInfo.Name, ts.info.Run, jsonText[file.FileInfoResponse]))
	return nil
}

func editText(r *file.EditFileResponse) string {
	if r.Written {
		return r.Diff
	}
	return "Dry run, nothing written:\n" + r.Diff
}

func listingText(r *directory.ListDirectoryResponse) string {
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		tag := "[FILE]"
		if e.Kind == directory.KindDirectory {
			tag = "[DIR]"
		}
		lines = append(lines, tag+" "+e.Name)
	}
	return strings.Join(lines, "\n")
}

// treeHandler has no typed output: the tree type is recursive and cannot be
// described by an inferred output schema.
func treeHandler(tree *directory.DirectoryTreeTool) mcp.ToolHandlerFor[directory.DirectoryTreeRequest, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args directory.DirectoryTreeRequest) (*mcp.CallToolResult, any, error) {
		h := handlerFor(DirectoryTree.Name, tree.Run, jsonText[directory.TreeNode])
		res, _, err := h(ctx, req, args)
		if err != nil {
			return nil, nil, err
		}
		return res, nil, nil
	}
}
