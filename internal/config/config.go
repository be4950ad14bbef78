// Package config provides configuration management for rrgraph.
//
// Config file locations (priority order):
//  1. $RRGRAPH_CONFIG
//  2. ./rrgraph.yaml
//  3. $XDG_CONFIG_HOME/rrgraph/config.yaml
//  4. ~/.config/rrgraph/config.yaml
//  5. /etc/rrgraph/config.yaml
//
// Command line flags override values read from the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"rrgraph/internal/codec"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		// No config found - return defaults
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

const (
	defaultDBPath   = "./rrgraph.db"
	defaultAddr     = ":3000"
	defaultFormat   = "capnp"
	defaultToolName = "rrgraph"
	defaultDebounce = 500 * time.Millisecond
)

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Database: DatabaseConfig{Path: defaultDBPath},
		Server:   ServerConfig{Addr: defaultAddr},
		Output:   OutputConfig{Format: defaultFormat},
		Tool:     ToolConfig{Name: defaultToolName},
		Watch:    WatchConfig{Debounce: Duration(defaultDebounce)},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Database.Path == "" {
		c.Database.Path = defaultDBPath
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
	if c.Tool.Name == "" {
		c.Tool.Name = defaultToolName
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = Duration(defaultDebounce)
	}
}

// Validate checks that the output format names a registered codec
func (c *Config) Validate() error {
	if !slices.Contains(codec.Formats(), c.OutputFormat()) {
		return fmt.Errorf("output format %q not in %v", c.Output.Format, codec.Formats())
	}
	return nil
}

// OutputFormat returns the codec name for the configured output, folding the
// packed flag into the capnp format
func (c *Config) OutputFormat() string {
	if c.Output.Packed && c.Output.Format == "capnp" {
		return "capnp-packed"
	}
	return c.Output.Format
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	return fmt.Sprintf("Database: %s, Server: %s, Output: %s, Tool: %s %s",
		c.Database.Path, c.Server.Addr, c.OutputFormat(), c.Tool.Name, c.Tool.Version)
}
