// Command mcpbox-term serves shell and file tools over MCP, confined to a
// single workspace directory.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/Cyclone1070/mcpbox/internal/config"
	"github.com/Cyclone1070/mcpbox/internal/logging"
	"github.com/Cyclone1070/mcpbox/internal/server"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/executor"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/fs"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/path"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const serverName = "mcpbox-term"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newApp().ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	cmd := &cobra.Command{
		Use:   serverName,
		Short: "MCP server for shell commands inside a workspace directory",
		Long: `MCP server for shell commands inside a workspace directory.

Commands run with the workspace as their working directory. The workspace is
confined for file tools only: a command can still reach anything the user
running this server can reach.`,
		Version:       server.Version,
		Args:          cobra.NoArgs,
		RunE:          serveAction,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.Bool("debug", false, "debug mode")
	flags.String("workspace", "", "workspace directory (default from config, ~/mcp/workspace)")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		logging.Setup(logrus.InfoLevel, debug)
		return nil
	}
	cmd.AddCommand(newToolsCommand())
	return cmd
}

func serveAction(cmd *cobra.Command, _ []string) error {
	srv, workspace, err := newServer(cmd)
	if err != nil {
		return err
	}
	logrus.WithField("workspace", workspace).Info("serving terminal tools on stdio")
	return srv.Run(cmd.Context(), &mcp.StdioTransport{})
}

// newServer prepares the workspace, creating it when missing, and builds the
// server with both the filesystem and terminal tool sets.
func newServer(cmd *cobra.Command) (*mcp.Server, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	workspaceFlag, err := cmd.Flags().GetString("workspace")
	if err != nil {
		return nil, "", err
	}
	if workspaceFlag != "" {
		cfg.Terminal.Workspace = workspaceFlag
	}

	fsys := fs.NewOSFileSystem()
	home, err := fsys.UserHomeDir()
	if err != nil {
		logrus.WithError(err).Debug("home directory unknown")
		home = ""
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}

	dir := config.ExpandHome(cfg.Terminal.Workspace, home)
	if err := fsys.EnsureDirs(dir); err != nil {
		return nil, "", fmt.Errorf("failed to create workspace: %w", err)
	}
	workspace, err := path.CanonicaliseRoot(dir, cwd, home)
	if err != nil {
		return nil, "", err
	}
	resolver := path.NewResolver(workspace, home, workspace)

	terminal, err := server.NewTerminalToolSet(fsys, resolver, executor.NewOSCommandExecutor(cfg), cfg.Terminal.Shell)
	if err != nil {
		return nil, "", err
	}
	srv, err := server.New(serverName, server.TerminalInstructions,
		server.NewFilesystemToolSet(fsys, resolver, cfg),
		terminal,
	)
	if err != nil {
		return nil, "", err
	}
	return srv, workspace, nil
}

func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool descriptors as JSON",
		Args:  cobra.NoArgs,
		RunE:  toolsAction,
	}
}

func toolsAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	srv, _, err := newServer(cmd)
	if err != nil {
		return err
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, serverTransport, nil)
	if err != nil {
		return err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return err
	}
	res, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return err
	}
	if err = clientSession.Close(); err != nil {
		return err
	}
	if err = serverSession.Wait(); err != nil {
		return err
	}
	j, err := json.MarshalIndent(res.Tools, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(j))
	return err
}
