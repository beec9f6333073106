// Package config loads the settings for a fixture generation run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/docufixture/pkg/fixture"
)

// Environment variables that override values from the config file
const (
	EnvEdgeCount = "DOCUFIXTURE_EDGE_COUNT"
	EnvOutputDir = "DOCUFIXTURE_OUTPUT_DIR"
	EnvSeed      = "DOCUFIXTURE_SEED"
	EnvLedger    = "DOCUFIXTURE_LEDGER"
)

var (
	ErrNegativeEdgeCount = errors.New("edge_count must not be negative")
	ErrNoOutputDir       = errors.New("output_dir is required")
)

// Config holds everything a generate run needs
type Config struct {
	EdgeCount int    `yaml:"edge_count"`
	OutputDir string `yaml:"output_dir"`

	// Seed is nil when a fresh seed should be drawn for the run
	Seed *uint64 `yaml:"seed,omitempty"`

	// LedgerPath enables run history when set
	LedgerPath string `yaml:"ledger_path,omitempty"`

	Progress bool          `yaml:"progress"`
	Logging  LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the CLI logger
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		EdgeCount: fixture.DefaultEdgeCount,
		OutputDir: ".",
		Progress:  true,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects settings the generator cannot satisfy
func (c *Config) Validate() error {
	if c.EdgeCount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeEdgeCount, c.EdgeCount)
	}
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvEdgeCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvEdgeCount, err)
		}
		c.EdgeCount = n
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = &seed
	}
	if v := os.Getenv(EnvLedger); v != "" {
		c.LedgerPath = v
	}
	return nil
}
