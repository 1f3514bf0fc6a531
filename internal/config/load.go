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
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %.1f out of range (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes near=%g far=%g are invalid", c.Camera.Near, c.Camera.Far)
	}
	if c.Controls.DampingFactor < 0 || c.Controls.DampingFactor > 1 {
		return fmt.Errorf("damping factor %g out of range [0, 1]", c.Controls.DampingFactor)
	}
	if c.Controls.EnableDamping && c.Controls.DampingFactor == 0 {
		return fmt.Errorf("damping factor %g must be above 0 when damping is enabled", c.Controls.DampingFactor)
	}
	if c.Debug.ScreenshotScale < 0 || c.Debug.ScreenshotScale > 8 {
		return fmt.Errorf("screenshot scale %d out of range [0, 8]", c.Debug.ScreenshotScale)
	}
	return nil
}

// AssetPath resolves an asset path against the configured asset directory.
func (c *Config) AssetPath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Assets.Dir == "" {
		return p
	}
	return filepath.Join(c.Assets.Dir, p)
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
		return filepath.Join(home, "Library", "Application Support", "SpaceScene")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SpaceScene")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "spacescene")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "spacescene")
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
