// Package formatter renders record declarations in canonical form: one
// declaration per block, named fields one per line with trailing commas,
// positional type lists on a single line.
package formatter

import (
	"strings"

	"github.com/recidx/recidx/parser"
)

// RecordFormatter formats record declaration source
type RecordFormatter struct{}

// NewRecordFormatter creates a new RecordFormatter
func NewRecordFormatter() *RecordFormatter {
	return &RecordFormatter{}
}

// Format parses and reformats declaration source text. Comments are not
// preserved; formatting is a canonicalization of the declarations themselves.
func (f *RecordFormatter) Format(src string) (string, error) {
	decls, err := parser.ParseString(src)
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	for i, decl := range decls {
		if i > 0 {
			builder.WriteByte('\n')
		}

		f.formatDeclaration(&builder, decl)
	}

	return builder.String(), nil
}

func (f *RecordFormatter) formatDeclaration(builder *strings.Builder, decl *parser.RecordDeclaration) {
	if decl.Mode == parser.PositionalFields {
		types := make([]string, 0, len(decl.Fields))
		for _, field := range decl.Fields {
			types = append(types, field.TypeText())
		}

		builder.WriteString("record " + decl.Name + "(" + strings.Join(types, ", ") + ")\n")

		return
	}

	if len(decl.Fields) == 0 {
		builder.WriteString("record " + decl.Name + " {}\n")
		return
	}

	builder.WriteString("record " + decl.Name + " {\n")

	for _, field := range decl.Fields {
		builder.WriteString("    " + field.Name + ": " + field.TypeText() + ",\n")
	}

	builder.WriteString("}\n")
}
