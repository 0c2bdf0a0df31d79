package convert

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
)

func TestAssemble_SimpleQuery(t *testing.T) {
	doc := docOf("Query",
		objectType("Query", field("foo", nonNull(scalarRef("String")))),
		scalarType("String"),
	)

	schema, err := Assemble(doc, Options{})
	require.NoError(t, err)

	data, err := sonic.ConfigStd.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"definitions":{"Query":{"properties":{"foo":{"type":"string"}}}},"ref":"Query"}`,
		string(data))
}

func TestAssemble_NullableFieldIsOptional(t *testing.T) {
	doc := docOf("Query",
		objectType("Query", field("tag", scalarRef("String"))),
		scalarType("String"),
	)

	schema, err := Assemble(doc, Options{})
	require.NoError(t, err)

	def := schema.Definitions["Query"]
	require.NotNil(t, def)
	assert.Empty(t, def.Properties)
	assert.Contains(t, def.OptionalProperties, "tag")
}

func TestAssemble_CyclicTypes(t *testing.T) {
	doc := docOf("A",
		objectType("A", field("b", objectRef("B"))),
		objectType("B", field("a", objectRef("A"))),
	)

	schema, err := Assemble(doc, Options{})
	require.NoError(t, err)

	require.Len(t, schema.Definitions, 2)
	assert.Equal(t, jddf.RefTo("B"), schema.Definitions["A"].OptionalProperties["b"])
	assert.Equal(t, jddf.RefTo("A"), schema.Definitions["B"].OptionalProperties["a"])
}

func TestAssemble_NoQueryRoot(t *testing.T) {
	doc := docOf("", objectType("Orphan"))

	_, err := Assemble(doc, Options{})
	assert.ErrorIs(t, err, ErrNoQueryRoot)
}

func TestAssemble_UndeclaredRoot(t *testing.T) {
	doc := docOf("Query", objectType("Other"))

	_, err := Assemble(doc, Options{})
	assert.ErrorIs(t, err, ErrBadQueryRoot)
}

func TestAssemble_NonObjectRoot(t *testing.T) {
	doc := docOf("Query", scalarType("Query"))

	_, err := Assemble(doc, Options{})
	assert.ErrorIs(t, err, ErrBadQueryRoot)
}

func TestAssemble_MutationOnlyTypesNotRegistered(t *testing.T) {
	doc := docOf("Query",
		objectType("Query", field("foo", scalarRef("String"))),
		objectType("MutationResult", field("ok", scalarRef("Boolean"))),
		scalarType("String"),
		scalarType("Boolean"),
	)
	doc.MutationType = &introspection.RootRef{Name: "MutationResult"}

	schema, err := Assemble(doc, Options{})
	require.NoError(t, err)

	// Only the query root's closure is traversed.
	assert.Contains(t, schema.Definitions, "Query")
	assert.NotContains(t, schema.Definitions, "MutationResult")
}

func TestAssemble_CustomScalarOverride(t *testing.T) {
	doc := docOf("Query",
		objectType("Query", field("createdAt", nonNull(scalarRef("DateTime")))),
		scalarType("DateTime"),
	)

	schema, err := Assemble(doc, Options{
		Scalars: map[string]jddf.Type{"DateTime": jddf.TypeTimestamp},
	})
	require.NoError(t, err)

	got := schema.Definitions["Query"].Properties["createdAt"]
	assert.Equal(t, jddf.TypeTimestamp, got.Type)
}

func TestAssemble_DepthBudgetOption(t *testing.T) {
	doc := docOf("Query",
		objectType("Query", field("matrix", list(list(scalarRef("Int"))))),
		scalarType("Int"),
	)

	schema, err := Assemble(doc, Options{MaxListDepth: 1})
	require.NoError(t, err)

	got := schema.Definitions["Query"].OptionalProperties["matrix"]
	want := jddf.ElementsOf(jddf.ElementsOf(jddf.Empty()))
	assert.Equal(t, want, got)
}

func TestAssemble_ConvertingTwiceIsStable(t *testing.T) {
	build := func() *introspection.Document {
		return docOf("Query",
			objectType("Query", field("b", objectRef("B")), field("n", nonNull(scalarRef("Int")))),
			objectType("B", field("q", objectRef("Query"))),
			scalarType("Int"),
		)
	}

	first, err := Assemble(build(), Options{})
	require.NoError(t, err)

	second, err := Assemble(build(), Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
