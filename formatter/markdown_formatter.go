package formatter

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

// MarkdownFormatter formats record code blocks within Markdown files
type MarkdownFormatter struct {
	recordFormatter *RecordFormatter
}

// NewMarkdownFormatter creates a new Markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{
		recordFormatter: NewRecordFormatter(),
	}
}

var (
	recordBlockStartRe = regexp.MustCompile("^(\\s*)```record\\s*$")
	codeBlockEndRe     = regexp.MustCompile("^(\\s*)```\\s*$")
)

// Format formats record code blocks within a Markdown file, leaving all other
// content untouched.
func (f *MarkdownFormatter) Format(markdown string) (string, error) {
	var (
		result       strings.Builder
		blockContent strings.Builder
		inBlock      bool
		blockIndent  string
	)

	scanner := bufio.NewScanner(strings.NewReader(markdown))

	for scanner.Scan() {
		line := scanner.Text()

		if !inBlock {
			if match := recordBlockStartRe.FindStringSubmatch(line); match != nil {
				inBlock = true
				blockIndent = match[1]
				blockContent.Reset()
			}

			result.WriteString(line)
			result.WriteString("\n")

			continue
		}

		if codeBlockEndRe.MatchString(line) {
			formatted, err := f.recordFormatter.Format(blockContent.String())
			if err != nil {
				return "", fmt.Errorf("failed to format record block: %w", err)
			}

			for _, formattedLine := range strings.Split(strings.TrimRight(formatted, "\n"), "\n") {
				if formattedLine != "" {
					result.WriteString(blockIndent)
				}

				result.WriteString(formattedLine)
				result.WriteString("\n")
			}

			result.WriteString(line)
			result.WriteString("\n")

			inBlock = false

			continue
		}

		blockContent.WriteString(line)
		blockContent.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to scan markdown: %w", err)
	}

	return result.String(), nil
}
