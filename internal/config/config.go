package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StatusDef defines one call-status category with styling and the
// keywords that classify a row into it
type StatusDef struct {
	// Key is the stable category identifier (e.g. "not-called")
	Key string `yaml:"key"`

	// Label is the display name shown on toggle buttons and badges
	Label string `yaml:"label"`

	// Color is the catppuccin color name (e.g. "red", "yellow", "green", "mauve")
	Color string `yaml:"color"`

	// Keywords classify row text into this status by substring
	// containment. Declaration order across statuses is the precedence
	// order when text could contain more than one keyword.
	Keywords []string `yaml:"keywords"`
}

// Config holds the application configuration
type Config struct {
	// Theme is the color theme to use (mocha, macchiato, frappe, latte)
	Theme string `yaml:"theme"`

	// RosterPath is the default call-log CSV to load
	RosterPath string `yaml:"roster_path"`

	// DebounceMs is the quiet period after a search keystroke before the
	// filter pass runs
	DebounceMs int `yaml:"debounce_ms"`

	// CountDelayMs defers the count refresh after a filter pass so
	// visibility changes settle first
	CountDelayMs int `yaml:"count_delay_ms"`

	// Statuses defines the closed category set (checked in order, first
	// keyword match wins)
	Statuses []StatusDef `yaml:"statuses"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:        "mocha",
		RosterPath:   "call_log_data.csv",
		DebounceMs:   150,
		CountDelayMs: 50,
		Statuses: []StatusDef{
			{
				Key:      "not-called",
				Label:    "Not Called",
				Color:    "overlay1",
				Keywords: []string{"not called", "to call", "pending"},
			},
			{
				Key:      "whatsapp",
				Label:    "WhatsApp Sent",
				Color:    "green",
				Keywords: []string{"whatsapp", "wa sent"},
			},
			{
				Key:      "confirmed",
				Label:    "Confirmed",
				Color:    "teal",
				Keywords: []string{"confirmed", "confirm"},
			},
			{
				Key:      "maybe",
				Label:    "Maybe",
				Color:    "yellow",
				Keywords: []string{"maybe", "tentative"},
			},
			{
				Key:      "busy",
				Label:    "Busy",
				Color:    "peach",
				Keywords: []string{"busy"},
			},
			{
				Key:      "not-reachable",
				Label:    "Not Reachable",
				Color:    "mauve",
				Keywords: []string{"not reachable", "unreachable", "no answer", "switched off"},
			},
			{
				Key:      "not-coming",
				Label:    "Not Coming",
				Color:    "red",
				Keywords: []string{"not coming", "declined"},
			},
		},
	}
}

// Load reads the config from a YAML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // config path from known locations
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDefaultPath attempts to load config from standard locations
func LoadFromDefaultPath() (*Config, error) {
	// Check in order: current dir, ~/.config/callsheet/, XDG_CONFIG_HOME
	paths := []string{
		"config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "callsheet", "config.yaml"),
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "callsheet", "config.yaml"))
	}

	for _, path := range paths {
		cleanPath := filepath.Clean(path)
		if _, err := os.Stat(cleanPath); err == nil {
			return Load(cleanPath)
		}
	}

	return DefaultConfig(), nil
}

// StatusFor returns the first status whose keywords are contained in the
// given text, or nil. Text is normalized by trimming and lower-casing;
// empty text never matches.
func (c *Config) StatusFor(text string) *StatusDef {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}
	for i := range c.Statuses {
		s := &c.Statuses[i]
		for _, kw := range s.Keywords {
			if kw != "" && strings.Contains(text, kw) {
				return s
			}
		}
	}
	return nil
}

// StatusByKey returns the status definition for a key, or nil
func (c *Config) StatusByKey(key string) *StatusDef {
	for i := range c.Statuses {
		if c.Statuses[i].Key == key {
			return &c.Statuses[i]
		}
	}
	return nil
}

// global config instance
var globalConfig *Config

// Global returns the global config instance, loading it if necessary
func Global() *Config {
	if globalConfig == nil {
		cfg, err := LoadFromDefaultPath()
		if err != nil {
			cfg = DefaultConfig()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal sets the global config instance (useful for testing)
func SetGlobal(cfg *Config) {
	globalConfig = cfg
}
