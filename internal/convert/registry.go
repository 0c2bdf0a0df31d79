package convert

import (
	"fmt"

	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
)

// conversionState tracks where a named type is in its conversion
// lifecycle. The pending state is what breaks reference cycles: a
// repeat request for a name that is still converting gets a ref
// immediately instead of re-entering conversion.
type conversionState int

const (
	stateUnseen conversionState = iota
	statePending
	stateDone
)

// registry stores each named type's converted definition exactly once.
// Entries are write-once; a registered name is never reconverted, so
// cyclic type graphs terminate.
type registry struct {
	types   map[string]*introspection.Type
	convert func(*introspection.Type) *jddf.Schema
	defs    map[string]*jddf.Schema
	states  map[string]conversionState
	order   []string
}

func newRegistry(types map[string]*introspection.Type, convert func(*introspection.Type) *jddf.Schema) *registry {
	return &registry{
		types:   types,
		convert: convert,
		defs:    make(map[string]*jddf.Schema),
		states:  make(map[string]conversionState),
		order:   nil,
	}
}

// Ref returns a ref form for the named type, converting it first if
// this is the first request for the name. The returned shape never
// depends on whether the referenced definition is populated yet; the
// definitions map is complete before the document is serialized.
func (g *registry) Ref(name string) *jddf.Schema {
	if g.states[name] == stateUnseen {
		g.states[name] = statePending
		g.order = append(g.order, name)

		typ := g.types[name]
		if typ == nil {
			panic(fmt.Sprintf("convert: type %q is not declared in the document", name))
		}

		g.defs[name] = g.convert(typ)
		g.states[name] = stateDone
	}

	return jddf.RefTo(name)
}

// Definitions returns the converted definitions keyed by type name.
func (g *registry) Definitions() map[string]*jddf.Schema {
	return g.defs
}

// Names returns the registered names in first-discovery order.
func (g *registry) Names() []string {
	return g.order
}
