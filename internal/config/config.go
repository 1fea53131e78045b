package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DataDir     string         `yaml:"data_dir"`
	Database    string         `yaml:"database"` // Relative paths resolve against DataDir
	LogLevel    string         `yaml:"log_level"`
	Autosave    AutosaveConfig `yaml:"autosave"`
	Board       BoardConfig    `yaml:"board"`
	Vault       VaultConfig    `yaml:"vault"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// AutosaveConfig controls the background saver
type AutosaveConfig struct {
	Enabled   *bool `yaml:"enabled"` // nil means enabled
	QueueSize int   `yaml:"queue_size"`
}

// BoardConfig holds board defaults
type BoardConfig struct {
	DefaultColumns []string `yaml:"default_columns"`
}

// VaultConfig holds markdown vault settings
type VaultConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
}

// Default values
const (
	DefaultDatabase     = "orion.db"
	DefaultLogLevel     = "info"
	DefaultQueueSize    = 64
	DefaultVaultPattern = "**/*.md"
)

// DefaultBoardColumns seeds new boards when none are configured
var DefaultBoardColumns = []string{"To Do", "In Progress", "Done"}

// AutosaveEnabled reports whether mutations are persisted in the background
func (c *Config) AutosaveEnabled() bool {
	return c.Autosave.Enabled == nil || *c.Autosave.Enabled
}

// DatabasePath returns the absolute sqlite path
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Database) {
		return c.Database
	}
	return filepath.Join(c.DataDir, c.Database)
}

// LogPath returns the log file location
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs", "orion.log")
}

// loadThemeFile loads and merges theme from ORION_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("ORION_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
			// Defaults only
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}
	}

	// Load theme from ORION_THEME_FILE if set
	loadThemeFile(config)

	// Fill in any missing values with defaults
	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// An explicit file wins
	if path := os.Getenv("ORION_CONFIG"); path != "" {
		return path, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "orion", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "orion", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	if c.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return err
		}
		c.DataDir = dir
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Autosave.QueueSize <= 0 {
		c.Autosave.QueueSize = DefaultQueueSize
	}
	if len(c.Board.DefaultColumns) == 0 {
		c.Board.DefaultColumns = DefaultBoardColumns
	}
	if c.Vault.Dir == "" {
		c.Vault.Dir = filepath.Join(c.DataDir, "vault")
	}
	if c.Vault.Pattern == "" {
		c.Vault.Pattern = DefaultVaultPattern
	}
	c.ColorScheme.ApplyDefaults()
	return nil
}

// defaultDataDir returns $XDG_DATA_HOME/orion, falling back to ~/.orion
func defaultDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "orion"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".orion"), nil
}
