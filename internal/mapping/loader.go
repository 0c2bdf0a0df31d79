package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads, parses and validates a YAML override file from the given path.
func LoadFile(path string) (*OverrideFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into an OverrideFile and validates it.
func Parse(data []byte) (*OverrideFile, error) {
	var of OverrideFile

	err := yaml.Unmarshal(data, &of)
	if err != nil {
		return nil, fmt.Errorf("failed to parse override YAML: %w", err)
	}

	applyDefaults(&of)

	diags := of.Validate()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid override file: %w", diags.Error())
	}

	return &of, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(of *OverrideFile) {
	if of.Version == "" {
		of.Version = "1"
	}
}
