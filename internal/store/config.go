package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "kata-tui"
	configFileName = "config.yaml"

	DefaultTickInterval = 250 * time.Millisecond
	minTickInterval     = 50 * time.Millisecond
	maxTickInterval     = 10 * time.Second
)

// Config holds user preferences for the dashboard. Every field is optional;
// zero values fall back to the defaults below.
type Config struct {
	// TickInterval is the period of the background tick event.
	TickInterval time.Duration `yaml:"tick_interval,omitempty"`
	// Theme forces the palette: "auto", "light" or "dark".
	Theme string `yaml:"theme,omitempty"`
	// Glyphs selects the glyph set: "unicode" or "ascii".
	Glyphs string `yaml:"glyphs,omitempty"`
	// Markdown toggles glamour rendering of prose in the detail pane.
	Markdown *bool `yaml:"markdown,omitempty"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.TickInterval == 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.TickInterval < minTickInterval {
		c.TickInterval = minTickInterval
	}
	if c.TickInterval > maxTickInterval {
		c.TickInterval = maxTickInterval
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = "auto"
	}
	c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	if c.Glyphs == "" {
		c.Glyphs = "unicode"
	}
	if c.Markdown == nil {
		on := true
		c.Markdown = &on
	}
}

func (c *Config) validate() error {
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want auto|light|dark)", c.Theme)
	}
	switch c.Glyphs {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("invalid glyphs %q (want unicode|ascii)", c.Glyphs)
	}
	return nil
}

// MarkdownEnabled reports whether detail prose is rendered through glamour.
func (c *Config) MarkdownEnabled() bool {
	return c.Markdown == nil || *c.Markdown
}

func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadConfig reads the YAML config at path. An empty path means the default
// location. A missing file yields the defaults; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		p, err := ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}
