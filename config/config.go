// Package config loads translator settings from YAML, .env files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vigenere-translator/crypto"
)

// Config is the top-level application configuration.
type Config struct {
	Key      string       `yaml:"key"` //nolint:gosec // configuration field, not a hardcoded secret
	Alphabet string       `yaml:"alphabet"`
	Mode     string       `yaml:"mode"`
	LogLevel string       `yaml:"log_level"`
	Server   ServerConfig `yaml:"server"`
}

// ServerConfig holds HTTP front end settings.
type ServerConfig struct {
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

func Default() Config {
	return Config{
		Alphabet: crypto.DefaultAlphabet,
		Mode:     string(crypto.ModeEncrypt),
		LogLevel: "info",
		Server: ServerConfig{
			Port:         8080,
			AllowOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Load reads the YAML file at path on top of Default. An empty path skips the
// file. ${VAR} references in the file are expanded before parsing, and PORT
// overrides the server port.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
		if err != nil {
			return Config{}, fmt.Errorf("config: load: %w", err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse: %w", err)
		}
	}

	if cfg.Alphabet == "" {
		cfg.Alphabet = crypto.DefaultAlphabet
	}
	if cfg.Mode == "" {
		cfg.Mode = string(crypto.ModeEncrypt)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("config: PORT %q is not a number", port)
		}
		cfg.Server.Port = p
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the .env file at path. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Validate checks the configured values. The key is optional since the
// interactive shell asks for it.
func (c Config) Validate() error {
	if err := crypto.ValidateAlphabet(c.Alphabet); err != nil {
		return fmt.Errorf("config: alphabet: %w", err)
	}
	if _, err := crypto.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: mode: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server port %d out of range", c.Server.Port)
	}
	return nil
}
