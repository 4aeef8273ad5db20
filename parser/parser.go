package parser

import (
	"fmt"
	"slices"

	pc "github.com/shibukawa/parsercombinator"

	tok "github.com/recidx/recidx/tokenizer"
)

func primitive(typeName string, types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

var (
	recordKeyword = primitive("record", tok.RECORD)
	identifier    = primitive("identifier", tok.IDENTIFIER)
	braceOpen     = primitive("braceOpen", tok.OPENED_BRACE)
	parenOpen     = primitive("parenOpen", tok.OPENED_PARENS)
	colon         = primitive("colon", tok.COLON)
	comma         = primitive("comma", tok.COMMA)

	// fieldListOpen matches either declaration shape's opening delimiter.
	fieldListOpen = pc.Or(braceOpen, parenOpen)
)

// ParseString tokenizes and parses record declaration source text.
func ParseString(src string) ([]*RecordDeclaration, error) {
	tokenizer := tok.NewRecordTokenizer(src, tok.TokenizerOptions{
		SkipWhitespace: true,
		SkipComments:   true,
	})

	tokens, err := tokenizer.AllTokens()
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

// Parse parses a tokenized declaration file into record declarations.
// Each declaration is independent; Parse only checks that record names
// do not collide within the file.
func Parse(tokens []tok.Token) ([]*RecordDeclaration, error) {
	pctx := pc.NewParseContext[tok.Token]()
	rest := toParserTokens(tokens)

	decls := make([]*RecordDeclaration, 0, 4)
	seen := make(map[string]bool)

	for len(rest) > 0 {
		decl, consumed, err := parseRecordDeclaration(pctx, rest)
		if err != nil {
			return nil, err
		}

		if seen[decl.Name] {
			return nil, fmt.Errorf("%w: %s at %d:%d", ErrDuplicateRecordName, decl.Name, decl.Position.Line, decl.Position.Column)
		}

		seen[decl.Name] = true

		decls = append(decls, decl)
		rest = rest[consumed:]
	}

	return decls, nil
}

// toParserTokens wraps tokenizer tokens for the combinator library.
// Whitespace, comments and EOF carry no structure and are dropped here.
func toParserTokens(tokens []tok.Token) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], 0, len(tokens))

	for _, token := range tokens {
		switch token.Type {
		case tok.EOF, tok.WHITESPACE, tok.LINE_COMMENT, tok.BLOCK_COMMENT:
			continue
		}

		results = append(results, pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		})
	}

	return results
}

func parseRecordDeclaration(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (*RecordDeclaration, int, error) {
	if _, _, err := recordKeyword(pctx, tokens); err != nil {
		pos := tokens[0].Val.Position
		return nil, 0, fmt.Errorf("%w: found %q at %d:%d", ErrExpectedRecord, tokens[0].Raw, pos.Line, pos.Column)
	}

	decl := &RecordDeclaration{Position: tokens[0].Val.Position}
	offset := 1

	_, name, err := identifier(pctx, tokens[offset:])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: at %d:%d", ErrExpectedRecordName, decl.Position.Line, decl.Position.Column)
	}

	decl.Name = name[0].Val.Value
	offset++

	_, matched, err := fieldListOpen(pctx, tokens[offset:])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: record %s at %d:%d", ErrExpectedFieldList, decl.Name, decl.Position.Line, decl.Position.Column)
	}

	offset++

	var consumed int

	switch matched[0].Val.Type {
	case tok.OPENED_BRACE:
		decl.Mode = NamedFields
		consumed, err = parseNamedFields(pctx, tokens[offset:], decl)
	default:
		decl.Mode = PositionalFields
		consumed, err = parsePositionalFields(tokens[offset:], decl)
	}

	if err != nil {
		return nil, 0, err
	}

	return decl, offset + consumed, nil
}

// parseNamedFields parses "name: type" pairs separated by commas up to the
// closing brace. A trailing comma is allowed; an empty list is accepted and
// rejected later by the validator.
func parseNamedFields(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token], decl *RecordDeclaration) (int, error) {
	offset := 0
	names := make(map[string]bool)

	for {
		if offset >= len(tokens) {
			return 0, fmt.Errorf("%w: record %s at %d:%d", ErrUnclosedFieldList, decl.Name, decl.Position.Line, decl.Position.Column)
		}

		if tokens[offset].Val.Type == tok.CLOSED_BRACE {
			return offset + 1, nil
		}

		_, matched, err := identifier(pctx, tokens[offset:])
		if err != nil {
			pos := tokens[offset].Val.Position
			return 0, fmt.Errorf("%w: record %s: found %q at %d:%d", ErrExpectedFieldName, decl.Name, tokens[offset].Raw, pos.Line, pos.Column)
		}

		field := FieldNode{
			Name:     matched[0].Val.Value,
			Position: matched[0].Val.Position,
		}

		if names[field.Name] {
			return 0, fmt.Errorf("%w: record %s: field %s at %d:%d", ErrDuplicateFieldName, decl.Name, field.Name, field.Position.Line, field.Position.Column)
		}

		names[field.Name] = true
		offset++

		if _, _, err := colon(pctx, tokens[offset:]); err != nil {
			return 0, fmt.Errorf("%w: record %s: field %s at %d:%d", ErrExpectedColon, decl.Name, field.Name, field.Position.Line, field.Position.Column)
		}

		offset++

		typeTokens, n, err := collectTypeTokens(tokens[offset:], tok.CLOSED_BRACE)
		if err != nil {
			return 0, fmt.Errorf("%w: record %s: field %s at %d:%d", err, decl.Name, field.Name, field.Position.Line, field.Position.Column)
		}

		field.TypeTokens = typeTokens
		offset += n

		decl.Fields = append(decl.Fields, field)

		if _, _, err := comma(pctx, tokens[offset:]); err == nil {
			offset++
		}
	}
}

// parsePositionalFields parses a bare comma-separated type list up to the
// closing parenthesis.
func parsePositionalFields(tokens []pc.Token[tok.Token], decl *RecordDeclaration) (int, error) {
	offset := 0

	for {
		if offset >= len(tokens) {
			return 0, fmt.Errorf("%w: record %s at %d:%d", ErrUnclosedFieldList, decl.Name, decl.Position.Line, decl.Position.Column)
		}

		if tokens[offset].Val.Type == tok.CLOSED_PARENS {
			return offset + 1, nil
		}

		pos := tokens[offset].Val.Position

		typeTokens, n, err := collectTypeTokens(tokens[offset:], tok.CLOSED_PARENS)
		if err != nil {
			return 0, fmt.Errorf("%w: record %s: field %d at %d:%d", err, decl.Name, len(decl.Fields), pos.Line, pos.Column)
		}

		decl.Fields = append(decl.Fields, FieldNode{
			TypeTokens: typeTokens,
			Position:   pos,
		})

		offset += n

		if offset < len(tokens) && tokens[offset].Val.Type == tok.COMMA {
			offset++
		}
	}
}

// collectTypeTokens captures the literal token sequence of one type expression:
// everything up to a comma or the field list's closing delimiter at nesting
// depth zero. No interpretation happens here; the sequence is the type.
func collectTypeTokens(tokens []pc.Token[tok.Token], closer tok.TokenType) ([]tok.Token, int, error) {
	collected := make([]tok.Token, 0, 4)
	depth := 0

	for i, token := range tokens {
		typ := token.Val.Type

		if depth == 0 && (typ == tok.COMMA || typ == closer) {
			if len(collected) == 0 {
				return nil, 0, ErrExpectedType
			}

			return collected, i, nil
		}

		switch typ {
		case tok.OPENED_BRACKET, tok.OPENED_PARENS, tok.OPENED_BRACE:
			depth++
		case tok.CLOSED_BRACKET, tok.CLOSED_PARENS, tok.CLOSED_BRACE:
			depth--
		}

		collected = append(collected, token.Val)
	}

	return nil, 0, ErrUnclosedFieldList
}
