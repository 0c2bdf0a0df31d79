package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
)

func TestScalarTable_Builtins(t *testing.T) {
	table := NewScalarTable(nil)

	cases := []struct {
		name string
		want jddf.Type
	}{
		{"String", jddf.TypeString},
		{"ID", jddf.TypeString},
		{"Boolean", jddf.TypeBoolean},
		{"Int", jddf.TypeInt32},
		{"Float", jddf.TypeFloat64},
	}

	for _, tc := range cases {
		got := table.Map(introspection.KindScalar, tc.name)
		assert.Equal(t, tc.want, got.Type, "scalar %s", tc.name)
	}
}

func TestScalarTable_EnumMapsToString(t *testing.T) {
	table := NewScalarTable(nil)

	got := table.Map(introspection.KindEnum, "Color")
	assert.Equal(t, jddf.TypeString, got.Type)
}

func TestScalarTable_UnknownScalarIsCatchAll(t *testing.T) {
	table := NewScalarTable(nil)

	got := table.Map(introspection.KindScalar, "DateTime")
	assert.True(t, got.IsEmpty())
}

func TestScalarTable_Overrides(t *testing.T) {
	table := NewScalarTable(map[string]jddf.Type{"DateTime": jddf.TypeTimestamp})

	got := table.Map(introspection.KindScalar, "DateTime")
	assert.Equal(t, jddf.TypeTimestamp, got.Type)
}

func TestScalarTable_OverrideNeverShadowsBuiltin(t *testing.T) {
	table := NewScalarTable(map[string]jddf.Type{"String": jddf.TypeTimestamp})

	got := table.Map(introspection.KindScalar, "String")
	assert.Equal(t, jddf.TypeString, got.Type)
}

func TestScalarTable_TotalOverArbitraryInput(t *testing.T) {
	table := NewScalarTable(nil)

	// Never errors or panics, whatever the name.
	for _, name := range []string{"", "String", "bogus", "__Type"} {
		assert.NotNil(t, table.Map(introspection.KindScalar, name))
		assert.NotNil(t, table.Map(introspection.KindEnum, name))
	}
}
