package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Provider ProviderConfig `json:"provider"`
	Workflow WorkflowConfig `json:"workflow"`
	Tools    ToolsConfig    `json:"tools"`
	Terminal TerminalConfig `json:"terminal"`
	UI       UIConfig       `json:"ui"`
}

type ProviderConfig struct {
	Model             string `json:"model"`               // Default: gemini-2.0-flash-001
	RequestsPerMinute int    `json:"requests_per_minute"` // Default: 60, 0 disables pacing
}

type WorkflowConfig struct {
	// MaxRounds caps completion requests per query.
	MaxRounds int `json:"max_rounds"` // Default: 20

	// Framing is prepended to every user query.
	Framing string `json:"framing"`
}

type ToolsConfig struct {
	MaxFileSize          int64 `json:"max_file_size"`           // Default: 20 * 1024 * 1024 (20MB)
	MaxCommandOutputSize int64 `json:"max_command_output_size"` // Default: 10 * 1024 * 1024 (10MB)
}

type TerminalConfig struct {
	// Workspace is the single directory the terminal server is confined to.
	Workspace string `json:"workspace"` // Default: ~/mcp/workspace

	// Shell is the argv prefix used to run command strings, split with shell-words rules.
	Shell string `json:"shell"` // Default: /bin/sh -c
}

type UIConfig struct {
	Markdown    bool   `json:"markdown"`     // Default: true
	WordWrap    int    `json:"word_wrap"`    // Default: 100
	HistoryFile string `json:"history_file"` // Default: ~/.config/mcpbox/history
}

// DefaultFraming constrains the model to the sandboxed workspace. It is advisory only.
const DefaultFraming = "Always use the allowed directory for all file operations. Never ask the user for path input.\n\n"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Model:             "gemini-2.0-flash-001",
			RequestsPerMinute: 60,
		},
		Workflow: WorkflowConfig{
			MaxRounds: 20,
			Framing:   DefaultFraming,
		},
		Tools: ToolsConfig{
			MaxFileSize:          20 * 1024 * 1024,
			MaxCommandOutputSize: 10 * 1024 * 1024,
		},
		Terminal: TerminalConfig{
			Workspace: "~/mcp/workspace",
			Shell:     "/bin/sh -c",
		},
		UI: UIConfig{
			Markdown:    true,
			WordWrap:    100,
			HistoryFile: "~/.config/mcpbox/history",
		},
	}
}
