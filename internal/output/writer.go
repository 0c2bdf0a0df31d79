// Package output serializes the generated schema document.
package output

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"jddf-generator/internal/jddf"
)

const filePerm = 0o644

// Write serializes schema to path, or to stdout when path is empty.
// Map keys are sorted so output is reproducible across runs.
func Write(schema *jddf.Schema, path string, indent bool) error {
	data, err := Marshal(schema, indent)
	if err != nil {
		return err
	}

	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		if err != nil {
			return fmt.Errorf("writing schema to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("writing schema file %s: %w", path, err)
	}

	return nil
}

// Marshal serializes schema to JSON, optionally indented.
func Marshal(schema *jddf.Schema, indent bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	// ConfigStd sorts map keys like encoding/json.
	if indent {
		data, err = sonic.ConfigStd.MarshalIndent(schema, "", "  ")
	} else {
		data, err = sonic.ConfigStd.Marshal(schema)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling schema document: %w", err)
	}

	return data, nil
}
