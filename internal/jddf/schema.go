package jddf

// Type is a JDDF primitive type name.
type Type string

// JDDF primitive types.
const (
	TypeBoolean   Type = "boolean"
	TypeString    Type = "string"
	TypeTimestamp Type = "timestamp"
	TypeInt8      Type = "int8"
	TypeUint8     Type = "uint8"
	TypeInt16     Type = "int16"
	TypeUint16    Type = "uint16"
	TypeInt32     Type = "int32"
	TypeUint32    Type = "uint32"
	TypeFloat32   Type = "float32"
	TypeFloat64   Type = "float64"
)

// Valid returns true if t is one of the JDDF primitive type names.
func (t Type) Valid() bool {
	switch t {
	case TypeBoolean, TypeString, TypeTimestamp,
		TypeInt8, TypeUint8, TypeInt16, TypeUint16,
		TypeInt32, TypeUint32, TypeFloat32, TypeFloat64:
		return true
	default:
		return false
	}
}

// Schema is a JDDF schema fragment. A Schema with no fields set is the
// empty form and serializes as {}, matching any value. The same struct
// also serves as the top-level document, which carries Definitions and
// a Ref to the root definition.
type Schema struct {
	Definitions        map[string]*Schema `json:"definitions,omitempty"`
	Ref                string             `json:"ref,omitempty"`
	Type               Type               `json:"type,omitempty"`
	Elements           *Schema            `json:"elements,omitempty"`
	Properties         map[string]*Schema `json:"properties,omitempty"`
	OptionalProperties map[string]*Schema `json:"optionalProperties,omitempty"`
}

// Empty returns the empty form, which matches any value.
func Empty() *Schema {
	return &Schema{}
}

// Primitive returns a type form for the given primitive.
func Primitive(t Type) *Schema {
	return &Schema{Type: t}
}

// RefTo returns a ref form pointing at the named definition.
func RefTo(name string) *Schema {
	return &Schema{Ref: name}
}

// ElementsOf returns an elements form whose items match elem.
func ElementsOf(elem *Schema) *Schema {
	return &Schema{Elements: elem}
}

// IsEmpty returns true if s is the empty form.
func (s *Schema) IsEmpty() bool {
	return s.Ref == "" && s.Type == "" && s.Elements == nil &&
		len(s.Definitions) == 0 && len(s.Properties) == 0 && len(s.OptionalProperties) == 0
}
