// Command mcpbox-fs serves file and directory tools over MCP, confined to
// the directories given on the command line.
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
	"github.com/Cyclone1070/mcpbox/internal/tool/service/fs"
	"github.com/Cyclone1070/mcpbox/internal/tool/service/path"
	"github.com/Cyclone1070/mcpbox/internal/workflow/toolmanager"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const serverName = "mcpbox-fs"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newApp().ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	cmd := &cobra.Command{
		Use:           serverName,
		Short:         "MCP server for file operations confined to allowed directories",
		Version:       server.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("debug", false, "debug mode")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		logging.Setup(logrus.InfoLevel, debug)
		return nil
	}
	cmd.AddCommand(
		newServeCommand(),
		newToolsCommand(),
	)
	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve DIR [DIR...]",
		Short: "Serve MCP over stdio",
		Long: `Serve MCP over stdio.

Every DIR must be an existing directory. Relative paths in tool arguments are
resolved against the current working directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: serveAction,
	}
}

func serveAction(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	srv, resolver, err := newServer(args)
	if err != nil {
		return err
	}
	logrus.WithField("roots", resolver.Roots()).Info("serving filesystem tools on stdio")
	return srv.Run(ctx, &mcp.StdioTransport{})
}

func newServer(dirs []string) (*mcp.Server, *path.Resolver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	fsys := fs.NewOSFileSystem()
	home, err := fsys.UserHomeDir()
	if err != nil {
		logrus.WithError(err).Debug("home directory unknown, \"~\" paths will be rejected")
		home = ""
	}

	roots, err := path.CanonicaliseRoots(dirs, cwd, home)
	if err != nil {
		return nil, nil, err
	}
	resolver := path.NewResolver(cwd, home, roots...)

	srv, err := server.New(serverName, server.FilesystemInstructions,
		server.NewFilesystemToolSet(fsys, resolver, cfg))
	if err != nil {
		return nil, nil, err
	}
	return srv, resolver, nil
}

func newToolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools [DIR...]",
		Short: "Print the tool descriptors as JSON",
		Long: `Print the tool descriptors as JSON.

With --declarations, print them as sent to the model backend instead.
DIR defaults to the current directory.`,
		RunE: toolsAction,
	}
	cmd.Flags().Bool("declarations", false, "print model-backend declarations")
	return cmd
}

func toolsAction(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	declarations, err := cmd.Flags().GetBool("declarations")
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"."}
	}

	tools, err := inspectTools(ctx, args)
	if err != nil {
		return err
	}

	var v any = tools
	if declarations {
		if v, err = toolmanager.ToDescriptors(tools); err != nil {
			return err
		}
	}
	j, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(j))
	return err
}

// inspectTools lists the server's tools over in-memory transports.
func inspectTools(ctx context.Context, dirs []string) ([]*mcp.Tool, error) {
	srv, _, err := newServer(dirs)
	if err != nil {
		return nil, err
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, err
	}
	res, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	if err = clientSession.Close(); err != nil {
		return nil, err
	}
	if err = serverSession.Wait(); err != nil {
		return nil, err
	}
	return res.Tools, nil
}
