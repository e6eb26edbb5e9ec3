// Package config provides configuration parsing for zram-pulse.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the zram-pulse configuration file.
type Config struct {
	// Refresh holds sampling cadence settings.
	Refresh RefreshConfig `yaml:"refresh"`
	// Sources holds data-source settings.
	Sources SourcesConfig `yaml:"sources"`
	// LogFile is an optional path for log output. Empty discards logs
	// unless -verbose routes them to stderr.
	LogFile string `yaml:"log_file"`
}

// RefreshConfig holds sampling cadence settings.
type RefreshConfig struct {
	// Interval is the starting refresh interval as a duration string
	// (e.g. "1s", "500ms"). The dashboard clamps it to its supported
	// bounds.
	Interval string `yaml:"interval"`
}

// SourcesConfig holds data-source settings.
type SourcesConfig struct {
	// ZramctlPath overrides the zramctl binary used for the device table.
	ZramctlPath string `yaml:"zramctl_path"`
	// Timeout is the per-tick budget for all provider calls combined,
	// as a duration string.
	Timeout string `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Refresh: RefreshConfig{Interval: "1s"},
		Sources: SourcesConfig{ZramctlPath: "zramctl", Timeout: "2s"},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/zram-pulse/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "zram-pulse", "config.yaml")
}

// Load reads the configuration at path. A missing file is not an error:
// the defaults are returned, so the tool runs unconfigured out of the box.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills fields the file left empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Refresh.Interval == "" {
		c.Refresh.Interval = def.Refresh.Interval
	}
	if c.Sources.ZramctlPath == "" {
		c.Sources.ZramctlPath = def.Sources.ZramctlPath
	}
	if c.Sources.Timeout == "" {
		c.Sources.Timeout = def.Sources.Timeout
	}
}

// RefreshInterval parses the configured refresh interval, falling back to
// the default on a malformed value.
func (c Config) RefreshInterval() time.Duration {
	return parseDuration(c.Refresh.Interval, time.Second)
}

// SourceTimeout parses the configured provider timeout, falling back to
// the default on a malformed value.
func (c Config) SourceTimeout() time.Duration {
	return parseDuration(c.Sources.Timeout, 2*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
