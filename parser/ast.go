package parser

import (
	"strings"

	tok "github.com/recidx/recidx/tokenizer"
)

// FieldNamingMode distinguishes the two declaration shapes.
type FieldNamingMode int

const (
	// NamedFields is the brace-delimited "name: type" shape.
	NamedFields FieldNamingMode = iota
	// PositionalFields is the parenthesized bare type list shape.
	PositionalFields
)

// String returns the string representation of FieldNamingMode
func (m FieldNamingMode) String() string {
	switch m {
	case NamedFields:
		return "named"
	case PositionalFields:
		return "positional"
	default:
		return "unknown"
	}
}

// RecordDeclaration is one record as the author wrote it, before field
// extraction. It is consumed within a single generation pass and never retained.
type RecordDeclaration struct {
	Name     string
	Mode     FieldNamingMode
	Fields   []FieldNode
	Position tok.Position
}

// FieldNode is one declared field with its literal, unexpanded type tokens.
// Name is empty in positional mode.
type FieldNode struct {
	Name       string
	TypeTokens []tok.Token
	Position   tok.Position
}

// TypeText returns the canonical spelling of the field's declared type:
// the literal token sequence rejoined with the minimal whitespace Go needs.
// Two type texts are equal exactly when their token sequences are equal,
// so whitespace differences in the source never matter but spelling
// differences (aliases, qualified paths) always do.
func (f FieldNode) TypeText() string {
	var builder strings.Builder

	for i, token := range f.TypeTokens {
		if i > 0 && wordlike(f.TypeTokens[i-1].Type) && wordlike(token.Type) {
			builder.WriteByte(' ')
		}

		builder.WriteString(token.Value)
	}

	return builder.String()
}

func wordlike(t tok.TokenType) bool {
	return t == tok.IDENTIFIER || t == tok.NUMBER || t == tok.RECORD
}
