// Package config builds the immutable run configuration: the required API
// key from the environment plus optional overrides from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvAPIKey is the environment variable carrying the Sympla API key.
const EnvAPIKey = "SYMPLA_API_KEY"

// ErrMissingAPIKey is returned when the required secret is absent. It is a
// startup failure: no network call may be made without it.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " not set")

// Config is the effective run configuration. It is constructed once at
// startup and passed explicitly to the components that need it.
type Config struct {
	// APIToken comes from the environment only and is never serialized.
	APIToken string `yaml:"-" json:"-"`

	// BaseURL overrides the Sympla API root, mainly for tests.
	BaseURL string `yaml:"base_url"`

	// DataDir is where the artifacts are written.
	DataDir string `yaml:"data_dir"`

	// MaxPages caps pagination.
	MaxPages int `yaml:"max_pages"`

	// WatchSchedule is the cron expression used by watch mode.
	WatchSchedule string `yaml:"watch_schedule"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:       ".",
		MaxPages:      20,
		WatchSchedule: "0 6 * * *",
	}
}

// Normalize fills zero values with defaults so a partially filled config
// file still behaves.
func (c *Config) Normalize() {
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.MaxPages <= 0 {
		c.MaxPages = 20
	}
	if c.WatchSchedule == "" {
		c.WatchSchedule = "0 6 * * *"
	}
}

// Load builds the effective configuration. path may be empty, in which case
// only defaults and the environment apply. The API key is validated before
// anything else so a misconfigured run fails before touching the network.
func Load(path string) (*Config, error) {
	token := os.Getenv(EnvAPIKey)
	if token == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg.Normalize()
	}

	cfg.APIToken = token
	return cfg, nil
}
