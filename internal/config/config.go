// Package config loads the optional YAML configuration for the feature tour.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // zone lookups work without a system zoneinfo

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when --config is unset.
const DefaultPath = "features.yaml"

// Config holds every tunable of the tour. All fields have working defaults;
// a missing file is not an error.
type Config struct {
	// Sections restricts the run to these section keys, in tour order.
	// Empty runs every section.
	Sections []string `yaml:"sections"`

	// Await drains pending futures and pool jobs before the program exits.
	Await bool `yaml:"await"`

	// Zone is the IANA zone used for the zoned date/time line.
	Zone string `yaml:"zone"`

	Pool    PoolConfig    `yaml:"pool"`
	Async   AsyncConfig   `yaml:"async"`
	Logging LoggingConfig `yaml:"logging"`
}

// PoolConfig sizes the lightweight-thread demo.
type PoolConfig struct {
	Workers         int           `yaml:"workers"` // 0 = one goroutine per task
	Tasks           int           `yaml:"tasks"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// AsyncConfig tunes the deferred-computation demo.
type AsyncConfig struct {
	Delay  time.Duration `yaml:"delay"`
	Result string        `yaml:"result"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// DefaultConfig mirrors the literal values of the tour.
func DefaultConfig() *Config {
	return &Config{
		Zone: "UTC",
		Pool: PoolConfig{
			Workers:         0,
			Tasks:           5,
			ShutdownTimeout: 5 * time.Second,
		},
		Async: AsyncConfig{
			Delay:  time.Second,
			Result: "Task Complete",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if zone := os.Getenv("FEATURES_ZONE"); zone != "" {
		c.Zone = zone
	}
	if v := os.Getenv("FEATURES_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FEATURES_WORKERS: %w", err)
		}
		c.Pool.Workers = n
	}
	if v := os.Getenv("FEATURES_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate rejects values the tour cannot run with.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Zone); err != nil {
		return fmt.Errorf("invalid zone %q: %w", c.Zone, err)
	}
	if c.Pool.Workers < 0 {
		return fmt.Errorf("pool.workers must be >= 0, got %d", c.Pool.Workers)
	}
	if c.Pool.Tasks < 0 {
		return fmt.Errorf("pool.tasks must be >= 0, got %d", c.Pool.Tasks)
	}
	if c.Async.Delay < 0 {
		return fmt.Errorf("async.delay must be >= 0, got %s", c.Async.Delay)
	}
	return nil
}
