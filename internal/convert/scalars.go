package convert

import (
	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
)

// ScalarTable maps scalar and enum type names to JDDF schema fragments.
// The mapping is total: unknown custom scalars fall back to the empty
// form, since introspection does not declare their representation.
type ScalarTable struct {
	overrides map[string]jddf.Type
}

// NewScalarTable creates a table with the given custom scalar overrides.
// Overrides never shadow the built-in scalars.
func NewScalarTable(overrides map[string]jddf.Type) ScalarTable {
	return ScalarTable{overrides: overrides}
}

// Map translates a scalar or enum reference to its JDDF fragment.
// Enums map to string; enumerated value constraints are not emitted.
func (t ScalarTable) Map(kind introspection.TypeKind, name string) *jddf.Schema {
	if kind == introspection.KindEnum {
		return jddf.Primitive(jddf.TypeString)
	}

	switch name {
	case "String", "ID":
		return jddf.Primitive(jddf.TypeString)
	case "Boolean":
		return jddf.Primitive(jddf.TypeBoolean)
	case "Int":
		return jddf.Primitive(jddf.TypeInt32)
	case "Float":
		return jddf.Primitive(jddf.TypeFloat64)
	}

	if target, ok := t.overrides[name]; ok {
		return jddf.Primitive(target)
	}

	return jddf.Empty()
}
