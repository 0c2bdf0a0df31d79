package convert

import (
	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
)

// DefaultListDepth is the list nesting budget per field traversal. It
// matches the deepest nesting the introspection query's fixed ofType
// expansion can express unambiguously.
const DefaultListDepth = 3

// resolver turns wrapped type descriptors into JDDF schema fragments.
type resolver struct {
	registry *registry
	scalars  ScalarTable
}

// resolve strips wrapper layers from ref. NON_NULL does not consume
// budget: nullability is expressed at the owning field, not inside the
// type schema. Each LIST layer consumes one unit; once the budget is
// exhausted the remainder degrades to the empty form. Named scalar and
// enum types are inlined; all other named types go through the registry
// and come back as refs.
func (r *resolver) resolve(ref *introspection.TypeRef, budget int) *jddf.Schema {
	if budget < 0 {
		return jddf.Empty()
	}

	switch ref.Kind {
	case introspection.KindNonNull:
		return r.resolve(ref.OfType, budget)

	case introspection.KindList:
		return jddf.ElementsOf(r.resolve(ref.OfType, budget-1))

	case introspection.KindScalar, introspection.KindEnum:
		return r.scalars.Map(ref.Kind, ref.Name)

	case introspection.KindObject, introspection.KindInterface,
		introspection.KindUnion, introspection.KindInputObject:
		return r.registry.Ref(ref.Name)

	default:
		// Unreachable on validated documents.
		return jddf.Empty()
	}
}
