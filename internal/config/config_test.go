package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points every config lookup at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("ORION_CONFIG", "")
	t.Setenv("ORION_THEME_FILE", "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.DataDir != filepath.Join(dir, "data", "orion") {
		t.Errorf("DataDir = %s, want XDG data dir", cfg.DataDir)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.DataDir, DefaultDatabase) {
		t.Errorf("DatabasePath = %s", cfg.DatabasePath())
	}
	if !cfg.AutosaveEnabled() || cfg.Autosave.QueueSize != DefaultQueueSize {
		t.Errorf("Expected autosave defaults, got %+v", cfg.Autosave)
	}
	if len(cfg.Board.DefaultColumns) != 3 {
		t.Errorf("Expected 3 default columns, got %v", cfg.Board.DefaultColumns)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Expected default accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, "orion", "config.yaml"), `data_dir: /srv/orion
database: /tmp/work.db
log_level: debug
autosave:
  enabled: false
board:
  default_columns: [Backlog, Doing]
vault:
  pattern: "notes/*.md"
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.DatabasePath() != "/tmp/work.db" {
		t.Errorf("DatabasePath = %s, want /tmp/work.db", cfg.DatabasePath())
	}
	if cfg.AutosaveEnabled() {
		t.Error("Expected autosave to be disabled")
	}
	if cfg.LogLevel != "debug" || cfg.Vault.Pattern != "notes/*.md" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Vault.Dir != filepath.Join("/srv/orion", "vault") {
		t.Errorf("Vault.Dir = %s", cfg.Vault.Dir)
	}
	if got := cfg.Board.DefaultColumns; len(got) != 2 || got[0] != "Backlog" {
		t.Errorf("DefaultColumns = %v", got)
	}

	// Custom accent wins, the rest comes from the monochrome preset
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want #123456", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Tag != MonochromeColorScheme().Tag {
		t.Errorf("Tag = %s, want monochrome default", cfg.ColorScheme.Tag)
	}
}

func TestLoadConfig_EnvOverrideAndInvalidYAML(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "elsewhere.yaml")
	writeFile(t, path, "log_level: warn\n")
	t.Setenv("ORION_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}

	writeFile(t, path, "autosave: [not, a, map]\n")
	if _, err := Load(); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestThemeFileLoading(t *testing.T) {
	dir := isolate(t)

	themePath := filepath.Join(dir, "theme.yaml")
	writeFile(t, themePath, `theme:
  accent: "#FF0000"
  create: "#00FF00"
`)
	t.Setenv("ORION_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}
