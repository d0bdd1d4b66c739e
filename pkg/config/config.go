package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const appName = "animes"

// Default returns the configuration used when no file exists yet
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "json",
			DataDir: "",
		},
		Window: WindowConfig{
			Width:     80,
			Height:    24,
			MinWidth:  40,
			MinHeight: 10,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

// DefaultDataDir returns the per-user application data directory
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// DefaultPath returns the path to the configuration file
func DefaultPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.ini"), nil
}

// Load reads the configuration from the INI file at path, writing the
// defaults there first if the file does not exist
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, cfg.resolve()
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := iniFile.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the INI file at path
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	iniFile := ini.Empty()
	if err := iniFile.ReflectFrom(cfg); err != nil {
		return fmt.Errorf("failed to reflect config: %w", err)
	}

	if err := iniFile.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// resolve fills the data directory and normalizes enum values
func (c *Config) resolve() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	if c.Storage.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return err
		}
		c.Storage.DataDir = dir
	}
	return nil
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "json", "duckdb":
	default:
		return fmt.Errorf("storage.backend must be json or duckdb, got %q", c.Storage.Backend)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.MinWidth > c.Window.Width || c.Window.MinHeight > c.Window.Height {
		return fmt.Errorf("window minimum size %dx%d exceeds default size %dx%d",
			c.Window.MinWidth, c.Window.MinHeight, c.Window.Width, c.Window.Height)
	}

	return nil
}

// LogDir is where rotated log files are kept
func (c *Config) LogDir() string {
	return filepath.Join(c.Storage.DataDir, "logs")
}

// LockPath is the instance lock file guarding the data directory
func (c *Config) LockPath() string {
	return filepath.Join(c.Storage.DataDir, appName+".lock")
}
