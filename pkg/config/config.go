package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/longtoip/pkg/ipconv"
	"github.com/vitalvas/longtoip/pkg/log"
)

// Output formats for converted values
const (
	OutputPlain = "plain"
	OutputTable = "table"
)

// Config holds settings for the longtoip command.
type Config struct {
	LogLevel  string     `yaml:"log_level"`
	LogFormat log.Format `yaml:"log_format"`
	// Overflow is "mask" or "reject", see ipconv.OverflowPolicy
	Overflow string `yaml:"overflow"`
	Output   string `yaml:"output"`
	// Workers bounds how many input files are converted concurrently
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: log.FormatText,
		Overflow:  ipconv.OverflowMask.String(),
		Output:    OutputPlain,
		Workers:   runtime.NumCPU(),
	}
}

// Load reads a YAML configuration file. An empty path returns the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.OverflowPolicy(); err != nil {
		return err
	}

	switch c.Output {
	case OutputPlain, OutputTable:
	default:
		return fmt.Errorf("unknown output %q (must be '%s' or '%s')", c.Output, OutputPlain, OutputTable)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if _, err := c.Logger(); err != nil {
		return err
	}

	return nil
}

// OverflowPolicy returns the parsed overflow policy.
func (c *Config) OverflowPolicy() (ipconv.OverflowPolicy, error) {
	return ipconv.ParseOverflowPolicy(c.Overflow)
}

// Logger builds a logger from the log settings.
func (c *Config) Logger() (*log.DefaultLogger, error) {
	return log.New(log.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
	})
}
