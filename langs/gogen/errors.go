package gogen

import "errors"

// Sentinel errors
var (
	// ErrNoRecords is returned when Generate is called with nothing to emit.
	ErrNoRecords = errors.New("no validated records to generate")
	// ErrInvalidGeneratedSource indicates the rendered source failed gofmt parsing,
	// which means a type text smuggled something that is not a Go type expression.
	ErrInvalidGeneratedSource = errors.New("generated source is not valid Go")
)
