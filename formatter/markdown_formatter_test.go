package formatter

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestMarkdownFormatRecordBlock(t *testing.T) {
	formatter := NewMarkdownFormatter()

	input := "# Records\n\n```record\nrecord P{x:int,y:int}\n```\n\nprose stays.\n"

	formatted, err := formatter.Format(input)
	assert.NoError(t, err)
	assert.Contains(t, formatted, "record P {\n    x: int,\n    y: int,\n}\n```")
	assert.Contains(t, formatted, "prose stays.")
}

func TestMarkdownFormatLeavesOtherBlocksAlone(t *testing.T) {
	formatter := NewMarkdownFormatter()

	input := "```go\nfunc   ugly()   {}\n```\n"

	formatted, err := formatter.Format(input)
	assert.NoError(t, err)
	assert.Equal(t, input, formatted)
}

func TestMarkdownFormatPreservesIndent(t *testing.T) {
	formatter := NewMarkdownFormatter()

	input := "- item\n\n  ```record\n  record A(int)\n  ```\n"

	formatted, err := formatter.Format(input)
	assert.NoError(t, err)
	assert.Contains(t, formatted, "  record A(int)\n")
}

func TestMarkdownFormatInvalidBlock(t *testing.T) {
	formatter := NewMarkdownFormatter()

	_, err := formatter.Format("```record\nrecord Broken {\n```\n")
	assert.Error(t, err)
}

func TestMarkdownFormatIsIdempotent(t *testing.T) {
	formatter := NewMarkdownFormatter()

	input := "```record\nrecord P{x:int}\n```\n"

	once, err := formatter.Format(input)
	assert.NoError(t, err)

	twice, err := formatter.Format(once)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(twice, "record P {"))
	assert.Equal(t, once, twice)
}
