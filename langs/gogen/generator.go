package gogen

import (
	"fmt"
	"go/format"
	"io"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/recidx/recidx/intermediate"
)

// Generator generates Go accessor code from validated record sets.
// One Generator emits one Go source file covering every record of one input.
type Generator struct {
	PackageName  string
	SourcePath   string   // provenance comment in the generated header
	ExtraImports []string // imports required by qualified type texts
	Records      []*intermediate.ValidatedFieldSet
}

// Option is a function that configures Generator
type Option func(*Generator)

// WithPackageName sets the package name for generated code
func WithPackageName(name string) Option {
	return func(g *Generator) {
		g.PackageName = name
	}
}

// WithSourcePath sets the input path recorded in the generated header
func WithSourcePath(path string) Option {
	return func(g *Generator) {
		g.SourcePath = path
	}
}

// WithExtraImports adds import paths for packages referenced by type texts
// that the built-in detection does not know about
func WithExtraImports(imports ...string) Option {
	return func(g *Generator) {
		g.ExtraImports = append(g.ExtraImports, imports...)
	}
}

// New creates a new Generator
func New(records []*intermediate.ValidatedFieldSet, opts ...Option) *Generator {
	g := &Generator{
		PackageName: "generated", // Default package name
		Records:     records,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate generates Go code and writes it to the writer
func (g *Generator) Generate(w io.Writer) error {
	if len(g.Records) == 0 {
		return ErrNoRecords
	}

	data := templateData{
		PackageName: g.PackageName,
		Source:      g.SourcePath,
		Imports:     g.collectImports(),
	}

	caser := cases.Title(language.English)

	for _, set := range g.Records {
		rec := recordData{
			Name:     set.Record.Name,
			Receiver: receiverName(set.Record.Name),
			TypeText: set.TypeText,
			Len:      set.Len(),
		}

		for _, field := range set.Record.Fields {
			rec.Fields = append(rec.Fields, fieldData{
				GoName: exportedFieldName(caser, field.Identifier),
				Index:  field.DeclarationOrder,
			})
		}

		data.Records = append(data.Records, rec)
	}

	tmpl, err := template.New("go").Parse(goTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder

	err = tmpl.Execute(&buf, data)
	if err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	// gofmt is the last line of defense: a type text that is not a valid Go
	// type expression surfaces here instead of in the user's build.
	formatted, err := format.Source([]byte(buf.String()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGeneratedSource, err)
	}

	_, err = w.Write(formatted)

	return err
}

// collectImports returns the sorted import list for the generated file.
// fmt is always needed for the bounds-failure panic; qualified stdlib type
// texts add their package.
func (g *Generator) collectImports() []string {
	imports := map[string]struct{}{"fmt": {}}

	for _, set := range g.Records {
		if strings.Contains(set.TypeText, "time.") {
			imports["time"] = struct{}{}
		}
	}

	for _, imp := range g.ExtraImports {
		imports[imp] = struct{}{}
	}

	result := make([]string, 0, len(imports))
	for imp := range imports {
		result = append(result, imp)
	}

	sort.Strings(result)

	return result
}

// receiverName derives the method receiver from the record name, avoiding the
// generated parameter names i and v.
func receiverName(recordName string) string {
	r := strings.ToLower(recordName[:1])
	if r == "i" || r == "v" {
		return "r"
	}

	return r
}

// exportedFieldName converts a declared field identifier to an exported Go
// field name. Snake case segments are title-cased (with ID/URL conventions);
// segments that already carry interior capitals keep them.
func exportedFieldName(caser cases.Caser, identifier string) string {
	parts := strings.Split(identifier, "_")

	for i, part := range parts {
		switch part {
		case "":
			continue
		case "id":
			parts[i] = "ID"
		case "url":
			parts[i] = "URL"
		default:
			if part == strings.ToLower(part) {
				parts[i] = caser.String(part)
			} else {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}

	return strings.Join(parts, "")
}

type templateData struct {
	PackageName string
	Source      string
	Imports     []string
	Records     []recordData
}

type recordData struct {
	Name     string
	Receiver string
	TypeText string
	Len      int
	Fields   []fieldData
}

type fieldData struct {
	GoName string
	Index  int
}

const goTemplate = `// Code generated by recidx. DO NOT EDIT.
{{- if .Source }}
// Source: {{ .Source }}
{{- end }}

package {{ .PackageName }}

import (
{{- range .Imports }}
	"{{ . }}"
{{- end }}
)
{{ range .Records }}
{{- $r := . }}
// {{ .Name }} provides indexed access to its fields in declaration order.
type {{ .Name }} struct {
{{- range .Fields }}
	{{ .GoName }} {{ $r.TypeText }}
{{- end }}
}

// {{ .Name }}Len is the number of indexable fields of {{ .Name }}.
const {{ .Name }}Len = {{ .Len }}

// At returns the value of the field at index i in declaration order.
// It panics if i is not in [0, {{ .Name }}Len).
func ({{ .Receiver }} {{ .Name }}) At(i int) {{ .TypeText }} {
	switch i {
{{- range .Fields }}
	case {{ .Index }}:
		return {{ $r.Receiver }}.{{ .GoName }}
{{- end }}
	default:
		panic(fmt.Sprintf("index out of bounds: the len is {{ .Len }} but the index is %d", i))
	}
}

// SetAt assigns v to the field at index i in declaration order.
// It panics if i is not in [0, {{ .Name }}Len).
func ({{ .Receiver }} *{{ .Name }}) SetAt(i int, v {{ .TypeText }}) {
	switch i {
{{- range .Fields }}
	case {{ .Index }}:
		{{ $r.Receiver }}.{{ .GoName }} = v
{{- end }}
	default:
		panic(fmt.Sprintf("index out of bounds: the len is {{ .Len }} but the index is %d", i))
	}
}
{{ end -}}
`
