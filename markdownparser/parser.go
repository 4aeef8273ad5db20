// Package markdownparser extracts record declarations from literate markdown
// files: every fenced code block tagged "record" is declaration source, and
// optional YAML front matter carries per-file generation settings.
package markdownparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/recidx/recidx/parser"
)

// Sentinel errors
var (
	ErrInvalidFrontMatter = fmt.Errorf("invalid front matter")
	ErrNoRecordBlocks     = fmt.Errorf("no record code blocks found")
)

// RecordDocument represents a parsed literate record file
type RecordDocument struct {
	Title        string
	Metadata     map[string]any
	Declarations []*parser.RecordDeclaration
}

// PackageName returns the front matter package override, or def when unset.
func (d *RecordDocument) PackageName(def string) string {
	if v, ok := d.Metadata["package"].(string); ok && v != "" {
		return v
	}

	return def
}

// Parse parses a literate markdown record file. All record blocks in the
// document are concatenated and parsed as one declaration source, so records
// may be split across sections but still share one namespace.
func Parse(reader io.Reader) (*RecordDocument, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	frontMatter, contentWithoutFrontMatter, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			gmparser.WithAutoHeadingID(),
		),
	)

	source := []byte(contentWithoutFrontMatter)
	doc := md.Parser().Parse(text.NewReader(source))

	title, blocks := extractRecordBlocks(doc, source)
	if len(blocks) == 0 {
		return nil, ErrNoRecordBlocks
	}

	decls, err := parser.ParseString(strings.Join(blocks, "\n"))
	if err != nil {
		return nil, err
	}

	return &RecordDocument{
		Title:        title,
		Metadata:     frontMatter,
		Declarations: decls,
	}, nil
}

// extractRecordBlocks walks the AST collecting the document title and the
// contents of every fenced code block tagged as record source.
func extractRecordBlocks(doc ast.Node, content []byte) (string, []string) {
	var (
		title  string
		blocks []string
	)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && title == "" {
				title = extractTextFromNode(node, content)
			}
		case *ast.FencedCodeBlock:
			if isRecordCodeBlock(node, content) {
				blocks = append(blocks, extractCodeBlockContent(node, content))
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", nil
	}

	return title, blocks
}

// isRecordCodeBlock checks if a fenced code block is marked as record source
func isRecordCodeBlock(codeBlock *ast.FencedCodeBlock, content []byte) bool {
	if codeBlock.Info == nil {
		return false
	}

	segment := codeBlock.Info.Segment
	info := string(content[segment.Start:segment.Stop])

	return strings.TrimSpace(strings.ToLower(info)) == "record"
}

// extractCodeBlockContent extracts the actual content from a code block AST node
func extractCodeBlockContent(codeBlock ast.Node, content []byte) string {
	var result strings.Builder

	if codeBlock.Lines() != nil {
		for i := 0; i < codeBlock.Lines().Len(); i++ {
			line := codeBlock.Lines().At(i)
			result.Write(content[line.Start:line.Stop])
		}
	}

	return result.String()
}

// extractTextFromNode collects the raw text of a node's inline children
func extractTextFromNode(node ast.Node, content []byte) string {
	var result strings.Builder

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			segment := textNode.Segment
			result.Write(content[segment.Start:segment.Stop])
		}
	}

	return strings.TrimSpace(result.String())
}
