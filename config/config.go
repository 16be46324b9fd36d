// Package config provides configuration management for execshim.
//
// Only ambient concerns are configurable here. The redirect target itself is
// read from the intercept.RedirectEnvVar environment variable on every call
// and deliberately cannot be supplied from a file, so the substitution
// behavior never depends on file state.
package config

import (
	"fmt"

	"github.com/victoralfred/gowritter/safepath"
	"gopkg.in/yaml.v3"

	"github.com/victoralfred/execshim/observability"
)

// Config is the main configuration for execshim.
type Config struct {
	Telemetry observability.TelemetryConfig `yaml:"telemetry"`
	Audit     observability.AuditConfig     `yaml:"audit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Telemetry: observability.DefaultTelemetryConfig(),
		Audit:     observability.DefaultAuditConfig(),
	}
}

// Validate validates the configuration, filling defaults for zero values.
func (c *Config) Validate() error {
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "execshim"
	}

	if c.Audit.Enabled {
		if c.Audit.BasePath == "" {
			return fmt.Errorf("audit enabled but base path is empty")
		}
		if c.Audit.FilePath == "" {
			return fmt.Errorf("audit enabled but file path is empty")
		}
	}

	if c.Audit.LogLevel == "" {
		c.Audit.LogLevel = observability.AuditLogAll
	}

	return nil
}

// Load reads a configuration file from basePath/file.
// Settings absent from the file keep their defaults.
func Load(basePath, file string) (Config, error) {
	cfg := DefaultConfig()

	sp, err := safepath.New(basePath)
	if err != nil {
		return cfg, fmt.Errorf("creating safe path: %w", err)
	}

	data, err := sp.ReadFile(file)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
