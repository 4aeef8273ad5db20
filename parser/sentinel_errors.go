package parser

import "errors"

// Sentinel errors
var (
	// ErrExpectedRecord indicates top-level content that is not a record declaration.
	ErrExpectedRecord = errors.New("expected 'record' keyword")
	// ErrExpectedRecordName indicates a record keyword without a following name.
	ErrExpectedRecordName = errors.New("expected record name")
	// ErrExpectedFieldList indicates a record name without a field list.
	ErrExpectedFieldList = errors.New("expected '{' or '(' after record name")
	// ErrExpectedFieldName indicates a missing field name in named mode.
	ErrExpectedFieldName = errors.New("expected field name")
	// ErrExpectedColon indicates a field name without the ':' separator.
	ErrExpectedColon = errors.New("expected ':' after field name")
	// ErrExpectedType indicates a field without a type expression.
	ErrExpectedType = errors.New("expected type expression")
	// ErrUnclosedFieldList indicates a field list missing its closing delimiter.
	ErrUnclosedFieldList = errors.New("unclosed field list")
	// ErrDuplicateFieldName indicates a field name used twice in one record.
	ErrDuplicateFieldName = errors.New("duplicate field name")
	// ErrDuplicateRecordName indicates a record name used twice in one file.
	ErrDuplicateRecordName = errors.New("duplicate record name")
)
