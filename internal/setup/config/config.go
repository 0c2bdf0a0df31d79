// Package config loads the generator's optional TOML configuration.
// Every setting has a matching CLI flag; flags take precedence.
package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"jddf-generator/internal/convert"
)

// Config holds all generator settings.
type Config struct {
	// Endpoint is a GraphQL endpoint to introspect. Mutually exclusive
	// with Input.
	Endpoint string `koanf:"endpoint"`
	// Token is sent as a bearer token when fetching from Endpoint.
	Token string `koanf:"token"`
	// Input is an introspection JSON file; "-" or empty means stdin.
	Input string `koanf:"input"`
	// Output is the destination file; empty means stdout.
	Output string `koanf:"output"`
	// Indent pretty-prints the output document.
	Indent bool `koanf:"indent"`
	// Scalars is the path to a YAML scalar-override file.
	Scalars string `koanf:"scalars"`
	// MaxListDepth is the list nesting budget per field traversal.
	MaxListDepth int `koanf:"max_list_depth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:        "-",
		MaxListDepth: convert.DefaultListDepth,
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}
