package tokenizer

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// RecordTokenizer is a tokenizer for record declaration files that returns an iterator
type RecordTokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
	SkipComments   bool
}

// NewRecordTokenizer creates a new RecordTokenizer
func NewRecordTokenizer(input string, options ...TokenizerOptions) *RecordTokenizer {
	opts := TokenizerOptions{
		SkipWhitespace: false,
		SkipComments:   false,
	}
	if len(options) > 0 {
		opts = options[0]
	}

	return &RecordTokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens
func (t *RecordTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{
			input:  t.input,
			line:   1,
			column: 0,
		}

		tokenizer.readChar()

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				if !yield(Token{}, err) {
					return
				}
				continue
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			// Filtering based on options
			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}
			if t.options.SkipComments && (token.Type == LINE_COMMENT || token.Type == BLOCK_COMMENT) {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice
func (t *RecordTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			break
		}
	}

	return tokens, nil
}

// Internal tokenizer implementation
type tokenizer struct {
	input   string
	pos     int // offset of current
	next    int // offset of the character after current
	line    int
	column  int
	current rune
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.current == '\n' {
		t.line++
		t.column = 0
	}

	if t.next >= len(t.input) {
		t.current = 0
		t.pos = len(t.input)
		t.column++
		return
	}

	t.current = rune(t.input[t.next])
	t.pos = t.next
	t.next++
	t.column++
}

// peekChar looks ahead at the next character
func (t *tokenizer) peekChar() rune {
	if t.next >= len(t.input) {
		return 0
	}
	return rune(t.input[t.next])
}

// position returns the position of the current character
func (t *tokenizer) position() Position {
	return Position{Line: t.line, Column: t.column, Offset: t.pos}
}

// single emits a one-character token and advances
func (t *tokenizer) single(typ TokenType) Token {
	token := Token{Type: typ, Value: string(t.current), Position: t.position()}
	t.readChar()
	return token
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	switch t.current {
	case 0:
		return Token{Type: EOF, Position: t.position()}, nil
	case ' ', '\t', '\r', '\n':
		return t.readWhitespace(), nil
	case '{':
		return t.single(OPENED_BRACE), nil
	case '}':
		return t.single(CLOSED_BRACE), nil
	case '(':
		return t.single(OPENED_PARENS), nil
	case ')':
		return t.single(CLOSED_PARENS), nil
	case '[':
		return t.single(OPENED_BRACKET), nil
	case ']':
		return t.single(CLOSED_BRACKET), nil
	case ',':
		return t.single(COMMA), nil
	case ':':
		return t.single(COLON), nil
	case '.':
		return t.single(DOT), nil
	case '*':
		return t.single(ASTERISK), nil
	case '/':
		if t.peekChar() == '/' {
			return t.readLineComment(), nil
		}
		if t.peekChar() == '*' {
			return t.readBlockComment()
		}
		return Token{}, fmt.Errorf("%w: '/' at line %d, column %d", ErrUnexpectedCharacter, t.line, t.column)
	default:
		if unicode.IsLetter(t.current) || t.current == '_' {
			return t.readWord(), nil
		}
		if unicode.IsDigit(t.current) {
			return t.readNumber(), nil
		}
		return Token{}, fmt.Errorf("%w: %q at line %d, column %d", ErrUnexpectedCharacter, t.current, t.line, t.column)
	}
}

// readWhitespace reads whitespace characters
func (t *tokenizer) readWhitespace() Token {
	var builder strings.Builder

	start := t.position()

	for unicode.IsSpace(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{Type: WHITESPACE, Value: builder.String(), Position: start}
}

// readWord reads words (identifiers and the record keyword)
func (t *tokenizer) readWord() Token {
	var builder strings.Builder

	start := t.position()

	for unicode.IsLetter(t.current) || unicode.IsDigit(t.current) || t.current == '_' {
		builder.WriteRune(t.current)
		t.readChar()
	}

	word := builder.String()

	typ := IDENTIFIER
	if word == "record" {
		typ = RECORD
	}

	return Token{Type: typ, Value: word, Position: start}
}

// readNumber reads numeric literals
func (t *tokenizer) readNumber() Token {
	var builder strings.Builder

	start := t.position()

	for unicode.IsDigit(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{Type: NUMBER, Value: builder.String(), Position: start}
}

// readLineComment reads a // comment up to the end of line
func (t *tokenizer) readLineComment() Token {
	var builder strings.Builder

	start := t.position()

	for t.current != '\n' && t.current != 0 {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{Type: LINE_COMMENT, Value: builder.String(), Position: start}
}

// readBlockComment reads a /* */ comment
func (t *tokenizer) readBlockComment() (Token, error) {
	var builder strings.Builder

	start := t.position()

	builder.WriteRune(t.current) // '/'
	t.readChar()
	builder.WriteRune(t.current) // '*'
	t.readChar()

	for {
		if t.current == 0 {
			return Token{}, fmt.Errorf("%w: started at line %d, column %d", ErrUnterminatedComment, start.Line, start.Column)
		}

		if t.current == '*' && t.peekChar() == '/' {
			builder.WriteRune(t.current)
			t.readChar()
			builder.WriteRune(t.current)
			t.readChar()

			return Token{Type: BLOCK_COMMENT, Value: builder.String(), Position: start}, nil
		}

		builder.WriteRune(t.current)
		t.readChar()
	}
}
