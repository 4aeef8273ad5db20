package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/recidx/recidx/formatter"
)

var (
	ErrFileNotFormatted = errors.New("file is not formatted")
	ErrFormattingErrors = errors.New("some files had formatting errors")
)

// FormatCmd represents the format command
type FormatCmd struct {
	Input  string `arg:"" optional:"" help:"Input file or directory (default: stdin)"`
	Output string `short:"o" help:"Output file (default: stdout, or overwrite input file)"`
	Check  bool   `short:"c" help:"Check if files are formatted (exit 1 if not)"`
}

// Run executes the format command
func (cmd *FormatCmd) Run(ctx *Context) error {
	if cmd.Input == "" {
		return cmd.formatFromReader(os.Stdin, os.Stdout, "<stdin>")
	}

	info, err := os.Stat(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	if info.IsDir() {
		return cmd.formatDirectory(ctx, cmd.Input)
	}

	return cmd.formatFile(ctx, cmd.Input)
}

// formatFromReader formats declarations from a reader and writes to a writer
func (cmd *FormatCmd) formatFromReader(reader io.Reader, writer io.Writer, filename string) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	formatted, err := formatSource(filename, string(input))
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}

	if cmd.Check {
		if formatted != string(input) {
			return fmt.Errorf("%w: %s", ErrFileNotFormatted, filename)
		}

		return nil
	}

	_, err = io.WriteString(writer, formatted)

	return err
}

// formatFile formats one file, overwriting it unless --output is given
func (cmd *FormatCmd) formatFile(ctx *Context, path string) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	formatted, err := formatSource(path, string(input))
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", path, err)
	}

	if cmd.Check {
		if formatted != string(input) {
			return fmt.Errorf("%w: %s", ErrFileNotFormatted, path)
		}

		return nil
	}

	outputPath := cmd.Output
	if outputPath == "" {
		outputPath = path
	}

	if formatted == string(input) && outputPath == path {
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(formatted), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	if ctx.Verbose {
		color.Green("Formatted %s", outputPath)
	}

	return nil
}

// formatDirectory formats every declaration file under dir
func (cmd *FormatCmd) formatDirectory(ctx *Context, dir string) error {
	files, err := collectInputFiles(dir)
	if err != nil {
		return err
	}

	failures := 0

	for _, file := range files {
		if err := cmd.formatFile(ctx, file); err != nil {
			failures++

			if !ctx.Quiet {
				color.Red("%v", err)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d files", ErrFormattingErrors, failures)
	}

	return nil
}

// formatSource picks the formatter by file extension.
func formatSource(path, input string) (string, error) {
	if strings.HasSuffix(filepath.Base(path), ".rec.md") {
		return formatter.NewMarkdownFormatter().Format(input)
	}

	return formatter.NewRecordFormatter().Format(input)
}
