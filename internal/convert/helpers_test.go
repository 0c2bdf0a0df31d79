package convert

import (
	"jddf-generator/internal/introspection"
)

// Fixture builders shared by the convert tests.

func scalarRef(name string) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.KindScalar, Name: name}
}

func enumRef(name string) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.KindEnum, Name: name}
}

func objectRef(name string) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.KindObject, Name: name}
}

func nonNull(inner *introspection.TypeRef) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.KindNonNull, OfType: inner}
}

func list(inner *introspection.TypeRef) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.KindList, OfType: inner}
}

func field(name string, ref *introspection.TypeRef) introspection.Field {
	return introspection.Field{Name: name, Type: ref}
}

func objectType(name string, fields ...introspection.Field) introspection.Type {
	return introspection.Type{Kind: introspection.KindObject, Name: name, Fields: fields}
}

func scalarType(name string) introspection.Type {
	return introspection.Type{Kind: introspection.KindScalar, Name: name}
}

func docOf(root string, types ...introspection.Type) *introspection.Document {
	doc := &introspection.Document{Types: types}
	if root != "" {
		doc.QueryType = &introspection.RootRef{Name: root}
	}

	return doc
}
