package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Database.Path != "./rrgraph.db" {
		t.Errorf("Database.Path = %s, want ./rrgraph.db", cfg.Database.Path)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("Server.Addr = %s, want :3000", cfg.Server.Addr)
	}
	if cfg.OutputFormat() != "capnp" {
		t.Errorf("OutputFormat() = %s, want capnp", cfg.OutputFormat())
	}
	if cfg.Watch.Debounce.Duration() != 500*time.Millisecond {
		t.Errorf("Watch.Debounce = %s, want 500ms", cfg.Watch.Debounce.Duration())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format string
		packed bool
		want   string
	}{
		{"capnp", false, "capnp"},
		{"capnp", true, "capnp-packed"},
		{"yaml", true, "yaml"},
		{"json", false, "json"},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Output = OutputConfig{Format: tt.format, Packed: tt.packed}
		if got := cfg.OutputFormat(); got != tt.want {
			t.Errorf("OutputFormat(%s, packed=%v) = %s, want %s", tt.format, tt.packed, got, tt.want)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output = OutputConfig{Format: "capnp", Packed: true}
	cfg.Tool = ToolConfig{Name: "vpr-tools", Version: "2.1", Comment: "generated"}
	cfg.Watch.Debounce = Duration(2 * time.Second)

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, path, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if path != configPath {
		t.Errorf("path = %s, want %s", path, configPath)
	}

	if loaded.OutputFormat() != "capnp-packed" {
		t.Errorf("OutputFormat() = %s, want capnp-packed", loaded.OutputFormat())
	}
	if got := loaded.Tool.Domain(); got.Name != "vpr-tools" || got.Version != "2.1" || got.Comment != "generated" {
		t.Errorf("Tool = %+v", got)
	}
	if loaded.Watch.Debounce.Duration() != 2*time.Second {
		t.Errorf("Watch.Debounce = %s, want 2s", loaded.Watch.Debounce.Duration())
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  addr: \":8080\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %s, want :8080", cfg.Server.Addr)
	}
	if cfg.Database.Path != "./rrgraph.db" {
		t.Errorf("Database.Path = %s, want default", cfg.Database.Path)
	}
	if cfg.Tool.Name != "rrgraph" {
		t.Errorf("Tool.Name = %s, want rrgraph", cfg.Tool.Name)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown output format", "output:\n  format: xml\n"},
		{"bad duration", "watch:\n  debounce: soon\n"},
		{"not yaml", "database: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, _, err := LoadFromPath(configPath); err == nil {
				t.Error("LoadFromPath() should fail")
			}
		})
	}
}

func TestFindConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Should find config in working directory
	found := FindConfigPath()
	if found == "" {
		t.Error("FindConfigPath() should find config in working directory")
	}

	// Explicit path doesn't exist, should fall back
	t.Setenv(EnvConfigPath, "/nonexistent/path.yaml")
	found = FindConfigPath()
	if found == "" {
		t.Error("FindConfigPath() should fall back when env path doesn't exist")
	}

	// Explicit path that exists wins
	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	if err := cfg.Save(explicit); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	t.Setenv(EnvConfigPath, explicit)
	if found = FindConfigPath(); found != explicit {
		t.Errorf("FindConfigPath() = %s, want %s", found, explicit)
	}
}

func TestDuration(t *testing.T) {
	d := Duration(5 * time.Minute)

	if d.Duration() != 5*time.Minute {
		t.Errorf("Duration() = %s, want 5m", d.Duration())
	}

	marshaled, err := d.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error: %v", err)
	}
	if marshaled != "5m0s" {
		t.Errorf("MarshalYAML() = %v, want 5m0s", marshaled)
	}
}

func TestCandidatePathsOrder(t *testing.T) {
	t.Setenv(EnvConfigPath, "/explicit.yaml")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/u")

	paths := candidatePaths()
	if len(paths) != 5 {
		t.Fatalf("candidatePaths() = %v, want 5 entries", paths)
	}
	if paths[0] != "/explicit.yaml" {
		t.Errorf("first candidate = %s, want explicit path", paths[0])
	}
	want := []string{
		filepath.Join("/xdg", ConfigDirName, "config.yaml"),
		filepath.Join("/home/u", ".config", ConfigDirName, "config.yaml"),
		filepath.Join("/etc", ConfigDirName, "config.yaml"),
	}
	for i, w := range want {
		if paths[i+2] != w {
			t.Errorf("candidate %d = %s, want %s", i+2, paths[i+2], w)
		}
	}

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	if got := len(candidatePaths()); got != 3 {
		t.Errorf("candidatePaths() without env = %d entries, want 3", got)
	}
}
