// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/calpick/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Picker PickerConfig `toml:"picker"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// PickerConfig holds navigation timing and output settings.
type PickerConfig struct {
	RepeatDelay    string `toml:"repeat_delay"`    // e.g., "500ms"
	RepeatInterval string `toml:"repeat_interval"` // e.g., "100ms"
	DateFormat     string `toml:"date_format"`     // Go layout, e.g., "2006-01-02"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: theme.DefaultName,
		},
		Picker: PickerConfig{
			RepeatDelay:    "500ms",
			RepeatInterval: "100ms",
			DateFormat:     time.DateOnly,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "calpick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(expandPath(path), cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CALPICK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("CALPICK_REPEAT_DELAY"); v != "" {
		cfg.Picker.RepeatDelay = v
	}
	if v := os.Getenv("CALPICK_REPEAT_INTERVAL"); v != "" {
		cfg.Picker.RepeatInterval = v
	}
	if v := os.Getenv("CALPICK_DATE_FORMAT"); v != "" {
		cfg.Picker.DateFormat = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if _, err := parsePositive(c.Picker.RepeatDelay, "repeat_delay"); err != nil {
		return err
	}
	if _, err := parsePositive(c.Picker.RepeatInterval, "repeat_interval"); err != nil {
		return err
	}
	if strings.TrimSpace(c.Picker.DateFormat) == "" {
		return errors.New("date_format must be set")
	}
	return nil
}

// parsePositive parses a Go duration string and rejects zero or negative values.
func parsePositive(s, field string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like \"500ms\", got %q", field, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %q", field, s)
	}
	return d, nil
}

// RepeatDelay returns the hold delay before auto-repeat starts.
// Call Validate first; invalid values yield zero.
func (c *Config) RepeatDelay() time.Duration {
	d, _ := parsePositive(c.Picker.RepeatDelay, "repeat_delay")
	return d
}

// RepeatInterval returns the period between auto-repeat steps.
// Call Validate first; invalid values yield zero.
func (c *Config) RepeatInterval() time.Duration {
	d, _ := parsePositive(c.Picker.RepeatInterval, "repeat_interval")
	return d
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
