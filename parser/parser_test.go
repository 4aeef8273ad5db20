package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseNamedRecord(t *testing.T) {
	decls, err := ParseString("record Example {a: uint32, b: uint32, c: uint32}")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(decls))

	decl := decls[0]
	assert.Equal(t, "Example", decl.Name)
	assert.Equal(t, NamedFields, decl.Mode)
	assert.Equal(t, 3, len(decl.Fields))
	assert.Equal(t, "a", decl.Fields[0].Name)
	assert.Equal(t, "b", decl.Fields[1].Name)
	assert.Equal(t, "c", decl.Fields[2].Name)

	for _, field := range decl.Fields {
		assert.Equal(t, "uint32", field.TypeText())
	}
}

func TestParsePositionalRecord(t *testing.T) {
	decls, err := ParseString("record Triple(uint32, uint32, uint32)")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(decls))

	decl := decls[0]
	assert.Equal(t, "Triple", decl.Name)
	assert.Equal(t, PositionalFields, decl.Mode)
	assert.Equal(t, 3, len(decl.Fields))

	for _, field := range decl.Fields {
		assert.Equal(t, "", field.Name)
		assert.Equal(t, "uint32", field.TypeText())
	}
}

func TestParseMultipleRecords(t *testing.T) {
	src := `
// coordinates
record Point {x: float64, y: float64}

record Pair(int, int)
`
	decls, err := ParseString(src)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(decls))
	assert.Equal(t, "Point", decls[0].Name)
	assert.Equal(t, "Pair", decls[1].Name)
}

func TestParseComplexTypeText(t *testing.T) {
	decls, err := ParseString("record Lookup {byName: map[string][]*Value, byID: map[string][]*Value}")
	assert.NoError(t, err)
	assert.Equal(t, "map[string][]*Value", decls[0].Fields[0].TypeText())
	assert.Equal(t, "map[string][]*Value", decls[0].Fields[1].TypeText())
}

func TestTypeTextIsWhitespaceInsensitive(t *testing.T) {
	decls, err := ParseString("record W {a: map[ string ] int, b: map[string]int}")
	assert.NoError(t, err)
	assert.Equal(t, decls[0].Fields[0].TypeText(), decls[0].Fields[1].TypeText())
}

func TestTypeTextPreservesSpelling(t *testing.T) {
	// Qualified and unqualified spellings stay distinct even if they would
	// resolve to the same type.
	decls, err := ParseString("record Q {a: Duration, b: time.Duration}")
	assert.NoError(t, err)
	assert.Equal(t, "Duration", decls[0].Fields[0].TypeText())
	assert.Equal(t, "time.Duration", decls[0].Fields[1].TypeText())
}

func TestTypeTextArrayAndWords(t *testing.T) {
	decls, err := ParseString("record A {buf: [4]byte, ch: chan int}")
	assert.NoError(t, err)
	assert.Equal(t, "[4]byte", decls[0].Fields[0].TypeText())
	assert.Equal(t, "chan int", decls[0].Fields[1].TypeText())
}

func TestParseTrailingComma(t *testing.T) {
	decls, err := ParseString("record T {a: int, b: int,}")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(decls[0].Fields))

	decls, err = ParseString("record U(int, int,)")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(decls[0].Fields))
}

func TestParseSingleField(t *testing.T) {
	decls, err := ParseString("record One {only: string}")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(decls[0].Fields))
}

func TestParseEmptyRecord(t *testing.T) {
	// The parser accepts an empty field list; rejection is the validator's job.
	decls, err := ParseString("record Empty {}")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(decls[0].Fields))

	decls, err = ParseString("record Unit()")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(decls[0].Fields))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"not a record", "type X {a: int}", ErrExpectedRecord},
		{"missing name", "record {a: int}", ErrExpectedRecordName},
		{"missing field list", "record X", ErrExpectedFieldList},
		{"missing colon", "record X {a int}", ErrExpectedColon},
		{"missing type", "record X {a: , b: int}", ErrExpectedType},
		{"unclosed braces", "record X {a: int", ErrUnclosedFieldList},
		{"unclosed parens", "record X(int", ErrUnclosedFieldList},
		{"duplicate field", "record X {a: int, a: int}", ErrDuplicateFieldName},
		{"duplicate record", "record X {a: int}\nrecord X {a: int}", ErrDuplicateRecordName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			assert.IsError(t, err, tt.want)
		})
	}
}

func TestFieldPositions(t *testing.T) {
	decls, err := ParseString("record P {\n  x: int,\n  y: int\n}")
	assert.NoError(t, err)
	assert.Equal(t, 2, decls[0].Fields[0].Position.Line)
	assert.Equal(t, 3, decls[0].Fields[1].Position.Line)
}
