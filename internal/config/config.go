// Package config provides configuration loading and validation for
// Clauseguard.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clauseguard/clauseguard/internal/remediation"
	"github.com/clauseguard/clauseguard/pkg/pathutil"
)

// Config represents the complete configuration for a client engagement.
type Config struct {
	Client            ClientConfig  `yaml:"client"`
	HourlyRate        int           `yaml:"hourly_rate,omitempty"`
	DefaultFrameworks []string      `yaml:"default_frameworks,omitempty"`
	Storage           StorageConfig `yaml:"storage,omitempty"`
	S3                *S3Config     `yaml:"s3,omitempty"`
}

// ClientConfig contains client identification information.
type ClientConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig controls where analyses and the history database live.
type StorageConfig struct {
	BaseDir      string `yaml:"base_dir,omitempty"`
	DatabasePath string `yaml:"database_path,omitempty"`
}

// S3Config contains settings for ingesting contracts from S3.
type S3Config struct {
	Region string `yaml:"region,omitempty"`
}

// DefaultConfig returns a config with defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Client:     ClientConfig{Name: "default"},
		HourlyRate: remediation.DefaultHourlyRate,
		Storage: StorageConfig{
			BaseDir:      "data",
			DatabasePath: "data/clauseguard.db",
		},
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	validPath, err := pathutil.ValidateConfigPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(validPath) //nolint:gosec // Path is validated above
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Client.Name == "" {
		c.Client.Name = "default"
	}
	if c.HourlyRate == 0 {
		c.HourlyRate = remediation.DefaultHourlyRate
	}
	if c.Storage.BaseDir == "" {
		c.Storage.BaseDir = "data"
	}
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = c.Storage.BaseDir + "/clauseguard.db"
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.HourlyRate < 0 {
		return fmt.Errorf("hourly_rate must be positive, got %d", c.HourlyRate)
	}
	for _, id := range c.DefaultFrameworks {
		if id == "" {
			return fmt.Errorf("default_frameworks contains an empty framework id")
		}
	}
	return nil
}
