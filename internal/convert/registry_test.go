package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
)

func TestRegistry_ConvertsEachNameOnce(t *testing.T) {
	a := objectType("A")
	counts := make(map[string]int)

	reg := newRegistry(
		map[string]*introspection.Type{"A": &a},
		func(typ *introspection.Type) *jddf.Schema {
			counts[typ.Name]++
			return jddf.Empty()
		},
	)

	first := reg.Ref("A")
	second := reg.Ref("A")

	assert.Equal(t, jddf.RefTo("A"), first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counts["A"])
	assert.Equal(t, []string{"A"}, reg.Names())
}

func TestRegistry_CycleTerminates(t *testing.T) {
	// A and B reference each other; conversion of A requests B, whose
	// conversion requests A again while A is still pending.
	a := objectType("A")
	b := objectType("B")

	var reg *registry

	counts := make(map[string]int)
	reg = newRegistry(
		map[string]*introspection.Type{"A": &a, "B": &b},
		func(typ *introspection.Type) *jddf.Schema {
			counts[typ.Name]++

			switch typ.Name {
			case "A":
				return &jddf.Schema{Properties: map[string]*jddf.Schema{"b": reg.Ref("B")}}
			case "B":
				return &jddf.Schema{Properties: map[string]*jddf.Schema{"a": reg.Ref("A")}}
			}

			return jddf.Empty()
		},
	)

	reg.Ref("A")

	require.Len(t, reg.Definitions(), 2)
	assert.Equal(t, 1, counts["A"])
	assert.Equal(t, 1, counts["B"])
	assert.Equal(t, jddf.RefTo("B"), reg.Definitions()["A"].Properties["b"])
	assert.Equal(t, jddf.RefTo("A"), reg.Definitions()["B"].Properties["a"])
	assert.Equal(t, []string{"A", "B"}, reg.Names())
}

func TestRegistry_DefinitionsAreWriteOnce(t *testing.T) {
	a := objectType("A")

	reg := newRegistry(
		map[string]*introspection.Type{"A": &a},
		func(*introspection.Type) *jddf.Schema { return jddf.Empty() },
	)

	reg.Ref("A")
	def := reg.Definitions()["A"]

	reg.Ref("A")
	assert.Same(t, def, reg.Definitions()["A"])
}

func TestRegistry_PanicsOnUndeclaredName(t *testing.T) {
	reg := newRegistry(
		map[string]*introspection.Type{},
		func(*introspection.Type) *jddf.Schema { return jddf.Empty() },
	)

	assert.Panics(t, func() { reg.Ref("Ghost") })
}
