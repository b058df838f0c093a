// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all atrium configuration.
type Config struct {
	UI      UI      `yaml:"ui"`
	Content Content `yaml:"content"`
	State   State   `yaml:"state"`
}

// UI holds presentation settings.
type UI struct {
	Theme string        `yaml:"theme"` // "dark" | "light"
	Fade  time.Duration `yaml:"fade"`  // duration of each fade half (out or in)
}

// Content holds content source settings.
type Content struct {
	Dir string `yaml:"dir"` // local overlay directory shadowing embedded content; empty disables
}

// State holds local persistence settings.
type State struct {
	Dir string `yaml:"dir"` // key-value store directory; empty means the default under the user config dir
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Theme: "dark",
			Fade:  300 * time.Millisecond,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "dark", "light":
		// valid
	default:
		return fmt.Errorf("config: ui.theme must be \"dark\" or \"light\", got %q", c.UI.Theme)
	}
	if c.UI.Fade < 0 {
		return fmt.Errorf("config: ui.fade must be non-negative, got %v", c.UI.Fade)
	}
	// Fades beyond 2s make every navigation feel broken; reject.
	if c.UI.Fade > 2*time.Second {
		return fmt.Errorf("config: ui.fade must be at most 2s, got %v", c.UI.Fade)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ATRIUM_THEME, ATRIUM_FADE, ATRIUM_CONTENT_DIR, ATRIUM_STATE_DIR.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ATRIUM_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("ATRIUM_FADE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid ATRIUM_FADE %q: %w", v, err)
		}
		c.UI.Fade = d
	}
	if v := os.Getenv("ATRIUM_CONTENT_DIR"); v != "" {
		c.Content.Dir = v
	}
	if v := os.Getenv("ATRIUM_STATE_DIR"); v != "" {
		c.State.Dir = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI      *rawUI      `yaml:"ui"`
	Content *rawContent `yaml:"content"`
	State   *rawState   `yaml:"state"`
}

type rawUI struct {
	Theme *string        `yaml:"theme"`
	Fade  *time.Duration `yaml:"fade"`
}

type rawContent struct {
	Dir *string `yaml:"dir"`
}

type rawState struct {
	Dir *string `yaml:"dir"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.Theme != nil {
			c.UI.Theme = *layer.UI.Theme
		}
		if layer.UI.Fade != nil {
			c.UI.Fade = *layer.UI.Fade
		}
	}
	if layer.Content != nil {
		if layer.Content.Dir != nil {
			c.Content.Dir = *layer.Content.Dir
		}
	}
	if layer.State != nil {
		if layer.State.Dir != nil {
			c.State.Dir = *layer.State.Dir
		}
	}
}
