package config

import (
	"time"

	"rrgraph/internal/domain"
)

// Config is the root configuration structure
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Output   OutputConfig   `yaml:"output"`
	Tool     ToolConfig     `yaml:"tool"`
	Watch    WatchConfig    `yaml:"watch"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// OutputConfig selects how built graphs are written
type OutputConfig struct {
	Format string `yaml:"format"`
	Packed bool   `yaml:"packed,omitempty"`
}

// ToolConfig is the tool metadata stamped into graphs whose spec leaves it out
type ToolConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// Domain converts the config to graph tool metadata
func (t ToolConfig) Domain() domain.Tool {
	return domain.Tool{Name: t.Name, Version: t.Version, Comment: t.Comment}
}

// WatchConfig holds file watch settings
type WatchConfig struct {
	Debounce Duration `yaml:"debounce"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
