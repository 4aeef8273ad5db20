package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// InitCmd represents the init command
type InitCmd struct {
}

// Run executes the init command
func (i *InitCmd) Run(ctx *Context) error {
	if ctx.Verbose {
		color.Blue("Initializing recidx project")
	}

	dirs := []string{
		"records",
		"generated",
	}

	for _, dir := range dirs {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if ctx.Verbose {
			color.Green("Created directory: %s", dir)
		}
	}

	err := createSampleConfig()
	if err != nil {
		return fmt.Errorf("failed to create sample configuration: %w", err)
	}

	err = createSampleRecords()
	if err != nil {
		return fmt.Errorf("failed to create sample files: %w", err)
	}

	if !ctx.Quiet {
		color.Green("recidx project initialized successfully")
		fmt.Println("\nNext steps:")
		fmt.Println("1. Edit recidx.yaml to configure generation output")
		fmt.Println("2. Declare records in the records/ directory")
		fmt.Println("3. Run 'recidx generate' to generate accessor code")
	}

	return nil
}

func createSampleConfig() error {
	configContent := `# Directory scanned for .rec and .rec.md declaration files
input_dir: "./records"

generation:
  validate: true
  generators:
    go:
      output: "./generated"
      settings:
        package: "generated"
    json:
      output: "./generated"
      disabled: true
`

	return writeFileIfMissing("recidx.yaml", configContent)
}

func createSampleRecords() error {
	sampleContent := `// Fields of one record must all share a single literal type.
// Indexed accessors are generated in declaration order.

record Example {a: uint32, b: uint32, c: uint32}

// Positional records work the same way with synthesized field names.
record Triple(uint32, uint32, uint32)
`

	return writeFileIfMissing("records/sample.rec", sampleContent)
}

func writeFileIfMissing(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(content), 0o644)
}
