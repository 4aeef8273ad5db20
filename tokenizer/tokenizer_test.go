package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenIterator(t *testing.T) {
	src := "record Example {a: uint32, b: uint32}"
	tokenizer := NewRecordTokenizer(src)

	expectedTypes := []TokenType{
		RECORD, WHITESPACE, IDENTIFIER, WHITESPACE, OPENED_BRACE,
		IDENTIFIER, COLON, WHITESPACE, IDENTIFIER, COMMA, WHITESPACE,
		IDENTIFIER, COLON, WHITESPACE, IDENTIFIER, CLOSED_BRACE, EOF,
	}

	var actualTypes []TokenType
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, token.Type)

		if token.Type == EOF {
			break
		}
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestTokenIteratorWithOptions(t *testing.T) {
	src := "record Triple(uint32, // trailing\nuint32, /* gap */ uint32)"
	tokenizer := NewRecordTokenizer(src, TokenizerOptions{
		SkipWhitespace: true,
		SkipComments:   true,
	})

	expectedTypes := []TokenType{
		RECORD, IDENTIFIER, OPENED_PARENS, IDENTIFIER, COMMA,
		IDENTIFIER, COMMA, IDENTIFIER, CLOSED_PARENS, EOF,
	}

	var actualTypes []TokenType
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, token.Type)

		if token.Type == EOF {
			break
		}
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestTypeExpressionTokens(t *testing.T) {
	src := "map[string][]*pkg.Value"
	tokenizer := NewRecordTokenizer(src, TokenizerOptions{SkipWhitespace: true})

	tokens, err := tokenizer.AllTokens()
	assert.NoError(t, err)

	expectedTypes := []TokenType{
		IDENTIFIER, OPENED_BRACKET, IDENTIFIER, CLOSED_BRACKET,
		OPENED_BRACKET, CLOSED_BRACKET, ASTERISK, IDENTIFIER, DOT, IDENTIFIER, EOF,
	}

	var actualTypes []TokenType
	for _, token := range tokens {
		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestArrayLengthNumber(t *testing.T) {
	tokenizer := NewRecordTokenizer("[4]byte", TokenizerOptions{SkipWhitespace: true})

	tokens, err := tokenizer.AllTokens()
	assert.NoError(t, err)
	assert.Equal(t, 5, len(tokens))
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, "4", tokens[1].Value)
}

func TestPositionTracking(t *testing.T) {
	src := "record P {\n  x: int\n}"
	tokenizer := NewRecordTokenizer(src, TokenizerOptions{SkipWhitespace: true})

	tokens, err := tokenizer.AllTokens()
	assert.NoError(t, err)

	// "x" starts at line 2, column 3
	var xToken Token
	for _, token := range tokens {
		if token.Value == "x" {
			xToken = token
		}
	}

	assert.Equal(t, 2, xToken.Position.Line)
	assert.Equal(t, 3, xToken.Position.Column)
}

func TestRecordKeywordIsCaseSensitive(t *testing.T) {
	tokenizer := NewRecordTokenizer("Record record", TokenizerOptions{SkipWhitespace: true})

	tokens, err := tokenizer.AllTokens()
	assert.NoError(t, err)
	assert.Equal(t, IDENTIFIER, tokens[0].Type)
	assert.Equal(t, RECORD, tokens[1].Type)
}

func TestUnterminatedBlockComment(t *testing.T) {
	tokenizer := NewRecordTokenizer("record X {} /* open")

	_, err := tokenizer.AllTokens()
	assert.IsError(t, err, ErrUnterminatedComment)
}

func TestUnexpectedCharacter(t *testing.T) {
	tokenizer := NewRecordTokenizer("record X @")

	_, err := tokenizer.AllTokens()
	assert.IsError(t, err, ErrUnexpectedCharacter)
}
