// Package config loads resolver settings from YAML.
//
// Example file:
//
//	platform_prefixes: ["android.", "java.", "javax.", "kotlin."]
//	max_enclosing_depth: 64
//	separator: binary
//	adapter_suffix: $$InjectAdapter
package config
