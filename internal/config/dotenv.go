package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment is the process environment as seen by LoadDotEnv.
type Environment interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnvironment implements Environment over the real process environment.
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (OSEnvironment) Setenv(key, value string) error      { return os.Setenv(key, value) }

// LoadDotEnv applies the variables from the .env file at path to env.
// Variables already present in env win. A missing file is not an error.
func LoadDotEnv(fs FileSystem, env Environment, path string) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ConfigError{Reason: "failed to read " + path, Cause: err}
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return &ConfigError{Reason: "failed to parse " + path, Cause: err}
	}

	for k, v := range vars {
		if _, exists := env.LookupEnv(k); exists {
			continue
		}
		if err := env.Setenv(k, v); err != nil {
			return &ConfigError{Reason: "failed to set " + k, Cause: err}
		}
	}
	return nil
}

// RequireAPIKey returns the model backend credential or a fatal ConfigError.
func RequireAPIKey(env Environment) (string, error) {
	key, ok := env.LookupEnv("GEMINI_API_KEY")
	if !ok || strings.TrimSpace(key) == "" {
		return "", &ConfigError{Reason: "missing credential", Cause: ErrMissingAPIKey}
	}
	return key, nil
}
