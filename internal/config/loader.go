package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for omitted fields.
// An explicitly empty platform_prefixes list disables the cutoff.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.PlatformPrefixes == nil {
		cfg.PlatformPrefixes = def.PlatformPrefixes
	}

	if cfg.MaxEnclosingDepth == 0 {
		cfg.MaxEnclosingDepth = def.MaxEnclosingDepth
	}

	if cfg.Separator == "" {
		cfg.Separator = def.Separator
	}

	if cfg.AdapterSuffix == "" {
		cfg.AdapterSuffix = def.AdapterSuffix
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
