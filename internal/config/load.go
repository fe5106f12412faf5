package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
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
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the editor cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Editor.ScalePercent <= 0 || c.Editor.ScalePercent >= 1 {
		return fmt.Errorf("scale_percent must be in (0, 1), got %v", c.Editor.ScalePercent)
	}
	if c.Editor.ZoomIn <= 0 || c.Editor.ZoomOut <= 0 {
		return fmt.Errorf("zoom factors must be positive")
	}
	if c.Editor.CurveSamples < 2 {
		return fmt.Errorf("curve_samples must be at least 2, got %d", c.Editor.CurveSamples)
	}
	if c.Editor.AnimationType < 1 || c.Editor.AnimationType > 7 {
		return fmt.Errorf("animation_type must be in 1..7, got %d", c.Editor.AnimationType)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		DefaultPath(),
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
		return filepath.Join(home, "Library", "Application Support", "vecedit")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vecedit")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "vecedit")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vecedit")
	}
}

// DefaultPath is where Save writes and the second place Load looks.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// loadFromFile loads config from a YAML file, merging with existing values.
// The file's key map is overlaid on the existing one by overlayKeys.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	base := cfg.Keys
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Keys = base
		return err
	}
	cfg.Keys = overlayKeys(base, cfg.Keys)
	return nil
}

// overlayKeys applies user bindings on top of base. A key named by user is
// taken away from any base action the user map does not mention, and an
// empty key name leaves the action unbound.
func overlayKeys(base, user map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(user))
	for action, key := range base {
		out[action] = key
	}
	for action, key := range user {
		if key != "" {
			for other, held := range out {
				if _, mine := user[other]; !mine && strings.EqualFold(held, key) {
					out[other] = ""
				}
			}
		}
		out[action] = key
	}
	return out
}
