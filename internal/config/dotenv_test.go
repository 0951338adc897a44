package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_ParsesFile(t *testing.T) {
	fs := &MockFileSystem{Files: map[string][]byte{
		".env": []byte("# comment\n\nGEMINI_API_KEY=abc123\nexport QUOTED=\"hello world\"\nSINGLE='x=y'\nEMPTY=\n"),
	}}
	env := mapEnv{}

	require.NoError(t, LoadDotEnv(fs, env, ".env"))

	assert.Equal(t, mapEnv{
		"GEMINI_API_KEY": "abc123",
		"QUOTED":         "hello world",
		"SINGLE":         "x=y",
		"EMPTY":          "",
	}, env)
}

func TestLoadDotEnv_InvalidLine(t *testing.T) {
	fs := &MockFileSystem{Files: map[string][]byte{
		".env": []byte("OK=1\nnot a pair\n"),
	}}
	env := mapEnv{}

	err := LoadDotEnv(fs, env, ".env")

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Reason, ".env")
	assert.Empty(t, env)
}

func TestLoadDotEnv_ExistingEnvironmentWins(t *testing.T) {
	fs := &MockFileSystem{Files: map[string][]byte{
		".env": []byte("GEMINI_API_KEY=from-file\nOTHER=1\n"),
	}}
	env := mapEnv{"GEMINI_API_KEY": "from-env"}

	require.NoError(t, LoadDotEnv(fs, env, ".env"))

	assert.Equal(t, "from-env", env["GEMINI_API_KEY"])
	assert.Equal(t, "1", env["OTHER"])
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	fs := &MockFileSystem{Files: map[string][]byte{}}
	env := mapEnv{}

	assert.NoError(t, LoadDotEnv(fs, env, ".env"))
	assert.Empty(t, env)
}

func TestLoadDotEnv_ReadError(t *testing.T) {
	fs := &MockFileSystem{ReadFileErr: os.ErrPermission}

	err := LoadDotEnv(fs, mapEnv{}, ".env")

	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestRequireAPIKey(t *testing.T) {
	key, err := RequireAPIKey(mapEnv{"GEMINI_API_KEY": "k"})
	require.NoError(t, err)
	assert.Equal(t, "k", key)

	_, err = RequireAPIKey(mapEnv{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = RequireAPIKey(mapEnv{"GEMINI_API_KEY": "  "})
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}
