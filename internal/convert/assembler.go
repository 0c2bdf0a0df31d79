package convert

import (
	"errors"
	"fmt"

	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
)

var (
	// ErrNoQueryRoot indicates the document declares no query root type,
	// the one mandatory root in a GraphQL type system.
	ErrNoQueryRoot = errors.New("no query root type declared")

	// ErrBadQueryRoot indicates the declared query root is missing from
	// the document's types or is not a composite type.
	ErrBadQueryRoot = errors.New("invalid query root type")
)

// Options control document assembly.
type Options struct {
	// MaxListDepth is the list nesting budget per field traversal.
	// DefaultListDepth is used when zero.
	MaxListDepth int
	// Scalars maps custom scalar names to JDDF primitive types.
	Scalars map[string]jddf.Type
}

// Assemble converts every named type reachable from the document's
// query root and returns the final JDDF document: the definitions map
// plus a ref to the root type. Mutation and subscription roots are not
// traversed; types reachable only from them get no definitions.
func Assemble(doc *introspection.Document, opts Options) (*jddf.Schema, error) {
	if doc.QueryType == nil || doc.QueryType.Name == "" {
		return nil, ErrNoQueryRoot
	}

	root := doc.QueryType.Name

	depth := opts.MaxListDepth
	if depth == 0 {
		depth = DefaultListDepth
	}

	conv := newConverter(doc, NewScalarTable(opts.Scalars), depth)

	rootType := conv.registry.types[root]
	if rootType == nil {
		return nil, fmt.Errorf("%w: %q is not declared in the document", ErrBadQueryRoot, root)
	}

	if rootType.Kind != introspection.KindObject {
		return nil, fmt.Errorf("%w: %q has kind %s", ErrBadQueryRoot, root, rootType.Kind)
	}

	conv.registry.Ref(root)

	return &jddf.Schema{
		Definitions: conv.registry.Definitions(),
		Ref:         root,
	}, nil
}
