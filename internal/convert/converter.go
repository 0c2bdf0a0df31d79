package convert

import (
	"fmt"

	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
)

// converter turns named types into JDDF definitions, consulting the
// resolver (and through it the registry) for each field's type.
type converter struct {
	registry *registry
	resolver *resolver
	depth    int
}

func newConverter(doc *introspection.Document, scalars ScalarTable, depth int) *converter {
	types := make(map[string]*introspection.Type, len(doc.Types))
	for i := range doc.Types {
		types[doc.Types[i].Name] = &doc.Types[i]
	}

	c := &converter{depth: depth}
	c.registry = newRegistry(types, c.convertType)
	c.resolver = &resolver{registry: c.registry, scalars: scalars}

	return c
}

// convertType produces the definition for one named type. Object,
// input object and interface types with resolved fields get a
// required/optional property split; unions and field-less interfaces
// degrade to the empty form — no common-field intersection or
// discriminated union is computed from the member types.
func (c *converter) convertType(typ *introspection.Type) *jddf.Schema {
	switch typ.Kind {
	case introspection.KindObject, introspection.KindInterface:
		if typ.Kind == introspection.KindInterface && len(typ.Fields) == 0 {
			return jddf.Empty()
		}

		fields := make([]namedRef, 0, len(typ.Fields))
		for i := range typ.Fields {
			fields = append(fields, namedRef{name: typ.Fields[i].Name, ref: typ.Fields[i].Type})
		}

		return c.convertFields(fields)

	case introspection.KindInputObject:
		fields := make([]namedRef, 0, len(typ.InputFields))
		for i := range typ.InputFields {
			fields = append(fields, namedRef{name: typ.InputFields[i].Name, ref: typ.InputFields[i].Type})
		}

		return c.convertFields(fields)

	case introspection.KindUnion:
		// The union itself degrades to the empty form, but its members
		// still get definitions of their own.
		for i := range typ.PossibleTypes {
			if name := typ.PossibleTypes[i].NamedType(); name != "" {
				c.registry.Ref(name)
			}
		}

		return jddf.Empty()

	default:
		// Scalars and enums are inlined by the resolver and never
		// registered; reaching here is a programming error.
		panic(fmt.Sprintf("convert: %s type %q cannot be registered as a definition", typ.Kind, typ.Name))
	}
}

// namedRef pairs a field name with its wrapped type descriptor.
type namedRef struct {
	name string
	ref  *introspection.TypeRef
}

// convertFields splits fields into properties (outer NON_NULL, required
// and never null) and optionalProperties (nullable). The NON_NULL
// wrapper itself only affects this classification; the inner schema is
// resolved with the full depth budget either way.
func (c *converter) convertFields(fields []namedRef) *jddf.Schema {
	schema := &jddf.Schema{}

	for _, f := range fields {
		if f.ref.NonNull() {
			if schema.Properties == nil {
				schema.Properties = make(map[string]*jddf.Schema)
			}

			schema.Properties[f.name] = c.resolver.resolve(f.ref.OfType, c.depth)

			continue
		}

		if schema.OptionalProperties == nil {
			schema.OptionalProperties = make(map[string]*jddf.Schema)
		}

		schema.OptionalProperties[f.name] = c.resolver.resolve(f.ref, c.depth)
	}

	return schema
}
