// Command mcpbox is an interactive client that lets a Gemini model use the
// tools of a sandboxed MCP server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/Cyclone1070/mcpbox/internal/config"
	"github.com/Cyclone1070/mcpbox/internal/logging"
	"github.com/Cyclone1070/mcpbox/internal/provider/gemini"
	"github.com/Cyclone1070/mcpbox/internal/server"
	"github.com/Cyclone1070/mcpbox/internal/transport"
	"github.com/Cyclone1070/mcpbox/internal/ui"
	"github.com/Cyclone1070/mcpbox/internal/workflow"
	"github.com/Cyclone1070/mcpbox/internal/workflow/loop"
	"github.com/Cyclone1070/mcpbox/internal/workflow/toolmanager"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultServerCommand = "mcpbox-term"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newApp().ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcpbox",
		Short: "Chat with a Gemini model that can call sandboxed MCP tools",
		Long: `Chat with a Gemini model that can call sandboxed MCP tools.

The server is started as a subprocess and spoken to over stdio. GEMINI_API_KEY
must be set in the environment or in a .env file in the current directory.`,
		Version:       server.Version,
		Args:          cobra.NoArgs,
		RunE:          runAction,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.Bool("debug", false, "debug mode")
	flags.String("server", defaultServerCommand, "command line that starts the MCP server")
	flags.String("model", "", "model name (default from config)")
	flags.StringP("query", "q", "", "answer a single query and exit")
	return cmd
}

type options struct {
	debug         bool
	serverCommand string
	model         string
	query         string
}

func parseOptions(cmd *cobra.Command) (*options, error) {
	flags := cmd.Flags()
	var (
		opts options
		err  error
	)
	if opts.debug, err = flags.GetBool("debug"); err != nil {
		return nil, err
	}
	if opts.serverCommand, err = flags.GetString("server"); err != nil {
		return nil, err
	}
	if opts.model, err = flags.GetString("model"); err != nil {
		return nil, err
	}
	if opts.query, err = flags.GetString("query"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.serverCommand) == "" {
		return nil, transport.ErrEmptyCommand
	}
	return &opts, nil
}

func runAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}
	logging.Setup(logrus.WarnLevel, opts.debug)

	env := config.OSEnvironment{}
	if err := config.LoadDotEnv(config.ConfigFileReader{}, env, ".env"); err != nil {
		return err
	}
	apiKey, err := config.RequireAPIKey(env)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.model != "" {
		cfg.Provider.Model = opts.model
	}

	client, err := transport.Spawn(ctx, opts.serverCommand, server.Version)
	if err != nil {
		return err
	}
	defer client.Close()

	tools, err := toolmanager.New(ctx, client)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Connected to server with tools: %s\n", strings.Join(tools.Names(), ", "))

	geminiClient, err := gemini.NewRealGeminiClient(ctx, apiKey)
	if err != nil {
		return err
	}
	llm := gemini.New(geminiClient, cfg.Provider.Model, cfg.Provider.RequestsPerMinute)

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	if opts.query != "" {
		return answerOnce(ctx, loop.NewLoop(llm, tools, nil, cfg.Workflow.Framing, cfg.Workflow.MaxRounds), renderer, opts.query, out)
	}

	events := make(chan workflow.Event, 16)
	defer close(events)
	queryLoop := loop.NewLoop(llm, tools, events, cfg.Workflow.Framing, cfg.Workflow.MaxRounds)

	home, _ := os.UserHomeDir()
	reader := ui.NewLinerReader(config.ExpandHome(cfg.UI.HistoryFile, home))
	defer func() {
		if err := reader.Close(); err != nil {
			logrus.WithError(err).Warn("failed to save history")
		}
	}()

	return ui.NewREPL(reader, out, queryLoop, renderer, events).Run(ctx)
}

func newRenderer(cfg *config.Config) (ui.MarkdownRenderer, error) {
	if !cfg.UI.Markdown {
		return ui.PlainRenderer{}, nil
	}
	return ui.NewMarkdownRenderer(cfg.UI.WordWrap)
}

type queryProcessor interface {
	ProcessQuery(ctx context.Context, query string) (string, error)
}

// answerOnce runs a single query without the REPL.
func answerOnce(ctx context.Context, processor queryProcessor, renderer ui.MarkdownRenderer, query string, out io.Writer) error {
	text, err := processor.ProcessQuery(ctx, query)
	if text != "" {
		rendered, rerr := renderer.Render(text)
		if rerr != nil {
			rendered = text + "\n"
		}
		fmt.Fprint(out, rendered)
	}
	return err
}
