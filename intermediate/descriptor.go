package intermediate

import (
	"fmt"

	"github.com/recidx/recidx/parser"
)

// FieldDescriptor describes one field of a record the way the accessor
// generator refers to it. Identifier is the generated-code name for the field;
// DeclarationOrder is the runtime index callers use, which is the field's
// zero-based position in the declaration regardless of naming mode.
type FieldDescriptor struct {
	Identifier       string `json:"identifier"`
	TypeText         string `json:"type_text"`
	DeclarationOrder int    `json:"declaration_order"`
}

// RecordFormat is the language-neutral description of one record declaration,
// produced by Extract and serializable as a JSON intermediate artifact.
type RecordFormat struct {
	Name       string            `json:"name"`
	Positional bool              `json:"positional"`
	Fields     []FieldDescriptor `json:"fields"`
	Source     SourceInfo        `json:"source"`
}

// SourceInfo records where the declaration came from.
type SourceInfo struct {
	File string `json:"file,omitempty"`
	Line int    `json:"line"`
}

// Extract turns a record declaration into its ordered field descriptor
// sequence. Named and positional declarations extract identically except for
// the identifier: positional fields get a synthesized FieldN name, since the
// author gave them none. The declaration itself is not retained.
func Extract(decl *parser.RecordDeclaration, sourceFile string) *RecordFormat {
	rec := &RecordFormat{
		Name:       decl.Name,
		Positional: decl.Mode == parser.PositionalFields,
		Fields:     make([]FieldDescriptor, 0, len(decl.Fields)),
		Source: SourceInfo{
			File: sourceFile,
			Line: decl.Position.Line,
		},
	}

	for i, field := range decl.Fields {
		identifier := field.Name
		if rec.Positional {
			identifier = fmt.Sprintf("Field%d", i)
		}

		rec.Fields = append(rec.Fields, FieldDescriptor{
			Identifier:       identifier,
			TypeText:         field.TypeText(),
			DeclarationOrder: i,
		})
	}

	return rec
}
