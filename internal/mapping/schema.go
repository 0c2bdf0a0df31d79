package mapping

import (
	"fmt"

	"jddf-generator/internal/common"
	"jddf-generator/internal/diagnostic"
	"jddf-generator/internal/jddf"
)

// Diagnostic codes emitted by Validate.
const (
	CodeBuiltinOverride = "builtin-override"
	CodeUnknownType     = "unknown-jddf-type"
	CodeEmptyName       = "empty-scalar-name"
)

// builtinScalars are the GraphQL built-in scalars whose translation is
// fixed and may not be remapped.
var builtinScalars = map[string]bool{
	"String":  true,
	"ID":      true,
	"Boolean": true,
	"Int":     true,
	"Float":   true,
}

// OverrideFile pins custom scalar names to JDDF primitive types.
// Without an override, a custom scalar translates to the empty form,
// since introspection does not declare its representation.
type OverrideFile struct {
	Version string            `yaml:"version"`
	Scalars map[string]string `yaml:"scalars"`
}

// Validate checks that every override names a non-builtin scalar and a
// known JDDF primitive type. Overrides are iterated in sorted order so
// diagnostics are deterministic.
func (f *OverrideFile) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, name := range common.SortedKeys(f.Scalars) {
		target := f.Scalars[name]

		if name == "" {
			diags.AddError(CodeEmptyName, "scalar override has no name", "", "")
			continue
		}

		if builtinScalars[name] {
			diags.AddError(CodeBuiltinOverride, "built-in scalar cannot be remapped", name, "")
		}

		if !jddf.Type(target).Valid() {
			diags.AddError(CodeUnknownType, fmt.Sprintf("%q is not a JDDF primitive type", target), name, "")
		}
	}

	return diags
}

// Table returns the overrides as a scalar-name to JDDF-type mapping.
// Call Validate first; Table does not re-check entries.
func (f *OverrideFile) Table() map[string]jddf.Type {
	if len(f.Scalars) == 0 {
		return nil
	}

	table := make(map[string]jddf.Type, len(f.Scalars))
	for name, target := range f.Scalars {
		table[name] = jddf.Type(target)
	}

	return table
}
