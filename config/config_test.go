package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigenere-translator/crypto"
)

const sampleYAML = `
key: ${TEST_VIGENERE_KEY}
alphabet: abcdefghijklmnopqrstuvwxyz
mode: decrypt
log_level: debug
server:
  port: 9090
  allow_origins: ["https://example.com"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_VIGENERE_KEY", "cab")
	t.Setenv("PORT", "")

	cfg, err := Load(writeFile(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "cab", cfg.Key)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", cfg.Alphabet)
	assert.Equal(t, "decrypt", cfg.Mode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.AllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, crypto.DefaultAlphabet, cfg.Alphabet)
	require.NoError(t, cfg.Validate())
}

func TestLoadPortOverride(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)

	t.Setenv("PORT", "seventy")
	_, err = Load("")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeFile(t, "bad.yaml", "server: [unclosed"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{name: "duplicate alphabet", mutate: func(c *Config) { c.Alphabet = "abca" }, target: crypto.ErrDuplicateSymbol},
		{name: "empty alphabet", mutate: func(c *Config) { c.Alphabet = "" }, target: crypto.ErrEmptyAlphabet},
		{name: "bad mode", mutate: func(c *Config) { c.Mode = "rot13" }, target: crypto.ErrInvalidMode},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := writeFile(t, ".env", "TEST_DOTENV_KEY=321\n")
	t.Setenv("TEST_DOTENV_KEY", "")
	require.NoError(t, os.Unsetenv("TEST_DOTENV_KEY"))
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "321", os.Getenv("TEST_DOTENV_KEY"))
}
