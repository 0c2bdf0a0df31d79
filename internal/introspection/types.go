package introspection

// TypeKind is the kind discriminator of an introspected type or type
// reference. The set of kinds is closed.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindNonNull     TypeKind = "NON_NULL"
	KindList        TypeKind = "LIST"
)

// Valid returns true if k is a known type kind.
func (k TypeKind) Valid() bool {
	switch k {
	case KindScalar, KindObject, KindInterface, KindUnion,
		KindEnum, KindInputObject, KindNonNull, KindList:
		return true
	default:
		return false
	}
}

// Wrapper returns true if k wraps an inner type (non-null or list).
func (k TypeKind) Wrapper() bool {
	return k == KindNonNull || k == KindList
}

// ResponseError is a GraphQL execution error carried in a response envelope.
type ResponseError struct {
	Message string `json:"message"`
}

// Document is the __schema object of an introspection response: the
// declared root operation types plus every named type in the schema.
type Document struct {
	QueryType        *RootRef `json:"queryType"`
	MutationType     *RootRef `json:"mutationType"`
	SubscriptionType *RootRef `json:"subscriptionType"`
	Types            []Type   `json:"types"`
}

// RootRef names a root operation type.
type RootRef struct {
	Name string `json:"name"`
}

// Type is one named type in the introspected schema.
type Type struct {
	Kind          TypeKind     `json:"kind"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Fields        []Field      `json:"fields"`
	InputFields   []InputValue `json:"inputFields"`
	Interfaces    []TypeRef    `json:"interfaces"`
	EnumValues    []EnumValue  `json:"enumValues"`
	PossibleTypes []TypeRef    `json:"possibleTypes"`
}

// Field is an output field of an object or interface type.
type Field struct {
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Args              []InputValue `json:"args"`
	Type              *TypeRef     `json:"type"`
	IsDeprecated      bool         `json:"isDeprecated,omitempty"`
	DeprecationReason string       `json:"deprecationReason,omitempty"`
}

// InputValue is a field argument or an input object field.
type InputValue struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
}

// EnumValue is one member of an enum type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	IsDeprecated      bool   `json:"isDeprecated,omitempty"`
	DeprecationReason string `json:"deprecationReason,omitempty"`
}

// TypeRef is a wrapped type descriptor: a finite chain of NON_NULL/LIST
// wrappers terminating in a named type. For wrapper kinds OfType holds
// the inner reference; for named kinds Name holds the target type name.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   string   `json:"name,omitempty"`
	OfType *TypeRef `json:"ofType"`
}

// NamedType walks the wrapper chain and returns the innermost type name,
// or empty string if the chain never reaches a named type.
func (r *TypeRef) NamedType() string {
	for cur := r; cur != nil; cur = cur.OfType {
		if cur.Name != "" {
			return cur.Name
		}
	}

	return ""
}

// NonNull returns true if the outermost wrapper is NON_NULL.
func (r *TypeRef) NonNull() bool {
	return r != nil && r.Kind == KindNonNull
}
