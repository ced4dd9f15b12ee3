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
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
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
		return filepath.Join(home, "Library", "Application Support", "GLDemos")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "GLDemos")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gldemos")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gldemos")
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

// Validate rejects settings the demo cannot start with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	switch strings.ToLower(c.Graphics.Window) {
	case "sdl", "glfw":
	default:
		return fmt.Errorf("unknown window backend %q (want sdl or glfw)", c.Graphics.Window)
	}
	switch c.Scene.Name {
	case "square", "gouraud-lambert", "gouraud-phong", "phong", "camera", "bouncing-balls":
	default:
		return fmt.Errorf("unknown scene %q", c.Scene.Name)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Scene.BallCount < 0 {
		return fmt.Errorf("negative ball count %d", c.Scene.BallCount)
	}
	switch strings.ToLower(strings.TrimSpace(c.Camera.Mode)) {
	case "orbiting", "orbit", "tracking", "track":
	default:
		return fmt.Errorf("unknown camera mode %q", c.Camera.Mode)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("fov %g out of range (0, 180)", c.Camera.FOV)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %g out of range [0, 1]", c.Audio.Volume)
	}
	return nil
}
