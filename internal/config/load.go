package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate rejects settings the page engine cannot be built from.
func (c *Config) Validate() error {
	switch {
	case c.Curve.Segments < 1:
		return fmt.Errorf("curve.segments must be at least 1, got %d", c.Curve.Segments)
	case c.Curve.TurnDuration <= 0:
		return fmt.Errorf("curve.turn_duration must be positive, got %v", c.Curve.TurnDuration)
	case !(c.Book.PageWidth > 0) || !(c.Book.PageHeight > 0):
		return fmt.Errorf("book page size must be positive, got %vx%v", c.Book.PageWidth, c.Book.PageHeight)
	case c.Book.HeightSegments < 1:
		return fmt.Errorf("book.height_segments must be at least 1, got %d", c.Book.HeightSegments)
	}
	switch c.Curve.Damping {
	case "", "exponential", "spring":
	default:
		return fmt.Errorf("curve.damping must be exponential or spring, got %q", c.Curve.Damping)
	}
	return nil
}

// ResolvedPath returns the file Load reads, or "" when defaults are used.
func ResolvedPath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	return findConfigFile()
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./flipbook.yaml",
		filepath.Join(ConfigDir(), "flipbook.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Flipbook")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Flipbook")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "flipbook")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "flipbook")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
