package intermediate

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/recidx/recidx/parser"
)

func mustParseOne(t *testing.T, src string) *parser.RecordDeclaration {
	t.Helper()

	decls, err := parser.ParseString(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(decls))

	return decls[0]
}

func TestExtractNamed(t *testing.T) {
	decl := mustParseOne(t, "record Example {a: uint32, b: uint32, c: uint32}")

	rec := Extract(decl, "example.rec")
	assert.Equal(t, "Example", rec.Name)
	assert.False(t, rec.Positional)
	assert.Equal(t, 3, len(rec.Fields))

	for i, field := range rec.Fields {
		assert.Equal(t, i, field.DeclarationOrder)
		assert.Equal(t, "uint32", field.TypeText)
	}

	assert.Equal(t, "a", rec.Fields[0].Identifier)
	assert.Equal(t, "b", rec.Fields[1].Identifier)
	assert.Equal(t, "c", rec.Fields[2].Identifier)
	assert.Equal(t, "example.rec", rec.Source.File)
}

func TestExtractPositional(t *testing.T) {
	decl := mustParseOne(t, "record Triple(uint32, uint32, uint32)")

	rec := Extract(decl, "triple.rec")
	assert.True(t, rec.Positional)
	assert.Equal(t, "Field0", rec.Fields[0].Identifier)
	assert.Equal(t, "Field1", rec.Fields[1].Identifier)
	assert.Equal(t, "Field2", rec.Fields[2].Identifier)

	// The runtime index is declaration order in both naming modes.
	for i, field := range rec.Fields {
		assert.Equal(t, i, field.DeclarationOrder)
	}
}

func TestExtractSingleField(t *testing.T) {
	decl := mustParseOne(t, "record One {only: string}")

	rec := Extract(decl, "")
	assert.Equal(t, 1, len(rec.Fields))
	assert.Equal(t, 0, rec.Fields[0].DeclarationOrder)
}

func TestExtractEmptyRecordIsForwarded(t *testing.T) {
	decl := mustParseOne(t, "record Empty {}")

	// Extraction itself does not reject; the validator does.
	rec := Extract(decl, "")
	assert.Equal(t, 0, len(rec.Fields))
}
