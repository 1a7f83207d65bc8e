package config

import (
	"errors"
	"fmt"
	"strings"
)

// Separator names accepted in the separator field.
const (
	SeparatorSource = "source"
	SeparatorBinary = "binary"
)

// Defaults.
const (
	DefaultMaxEnclosingDepth = 64
	DefaultAdapterSuffix     = "$$InjectAdapter"
	DefaultSeparator         = SeparatorSource
)

// DefaultPlatformPrefixes are the namespaces owned by the host runtime and
// standard library.
var DefaultPlatformPrefixes = []string{"android.", "java.", "javax."}

// Config holds resolver settings.
type Config struct {
	// PlatformPrefixes are qualified-name prefixes at which supertype walks stop.
	PlatformPrefixes []string `yaml:"platform_prefixes,omitempty"`
	// MaxEnclosingDepth bounds the walk from an element to its package.
	MaxEnclosingDepth int `yaml:"max_enclosing_depth,omitempty"`
	// Separator selects the nested-type separator for reports: "source" or "binary".
	Separator string `yaml:"separator,omitempty"`
	// AdapterSuffix is appended to binary names to form adapter names.
	AdapterSuffix string `yaml:"adapter_suffix,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PlatformPrefixes:  append([]string(nil), DefaultPlatformPrefixes...),
		MaxEnclosingDepth: DefaultMaxEnclosingDepth,
		Separator:         DefaultSeparator,
		AdapterSuffix:     DefaultAdapterSuffix,
	}
}

// Validate checks that cfg is usable.
func (c *Config) Validate() error {
	var errs []error

	for i, p := range c.PlatformPrefixes {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("platform_prefixes[%d] is empty", i))
		}
	}

	if c.MaxEnclosingDepth <= 0 {
		errs = append(errs, fmt.Errorf("max_enclosing_depth must be positive, got %d", c.MaxEnclosingDepth))
	}

	switch c.Separator {
	case SeparatorSource, SeparatorBinary:
	default:
		errs = append(errs, fmt.Errorf("separator must be %q or %q, got %q",
			SeparatorSource, SeparatorBinary, c.Separator))
	}

	if c.AdapterSuffix == "" {
		errs = append(errs, errors.New("adapter_suffix is empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}
