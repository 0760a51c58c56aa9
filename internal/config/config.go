// Package config handles global relq configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/relquery/relq/internal/atomicfile"
)

// Config represents the global relq configuration.
type Config struct {
	// Database is the DSN to query: a sqlite path or a postgres:// URL.
	Database string `toml:"database"`

	// Schema is the path to the entity schema file.
	Schema string `toml:"schema"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	CodeTheme string `toml:"code_theme"`
}

// DefaultPath returns the default config file location:
// $XDG_CONFIG_HOME/relq/relq.toml, falling back to ~/.config/relq/relq.toml.
func DefaultPath() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "relq", "relq.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "relq", "relq.toml"), nil
}

// Load reads config from path, or the default location when path is
// empty. A missing file yields an empty config, not an error; env
// overrides still apply.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv loads a .env file if one is present in the working directory
// and lets RELQ_DATABASE_URL / RELQ_SCHEMA override file values.
func (c *Config) applyEnv() {
	_ = godotenv.Load()
	if dsn := os.Getenv("RELQ_DATABASE_URL"); dsn != "" {
		c.Database = dsn
	}
	if schemaPath := os.Getenv("RELQ_SCHEMA"); schemaPath != "" {
		c.Schema = schemaPath
	}
}

// Save writes the config as TOML, creating parent directories. The
// write is atomic so an interrupted save never corrupts an existing
// config.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
