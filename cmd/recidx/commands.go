package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	recidx "github.com/recidx/recidx"
	"github.com/recidx/recidx/intermediate"
	"github.com/recidx/recidx/langs/gogen"
	"github.com/recidx/recidx/markdownparser"
	"github.com/recidx/recidx/parser"
)

// GenerateCmd represents the generate command
type GenerateCmd struct {
	Input   string `short:"i" help:"Input file or directory" type:"path"`
	Lang    string `help:"Generate only the given output language (go, json)"`
	Package string `help:"Package name for generated Go code"`
	Pretty  bool   `help:"Indent JSON intermediate output" default:"true" negatable:""`
}

// Run executes the generate command
func (g *GenerateCmd) Run(ctx *Context) error {
	config, err := recidx.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	inputPath := g.Input
	if inputPath == "" {
		inputPath = config.InputDir
	}

	if ctx.Verbose {
		color.Blue("Generating accessors from %s", inputPath)
	}

	units, err := loadUnits(ctx, inputPath)
	if err != nil {
		return err
	}

	generators, err := g.selectGenerators(config)
	if err != nil {
		return err
	}

	generated := 0

	for name, generator := range generators {
		for _, unit := range units {
			outputPath, err := g.emit(name, generator, unit)
			if err != nil {
				return fmt.Errorf("failed to generate %s output for %s: %w", name, unit.path, err)
			}

			if ctx.Verbose {
				color.Green("Generated %s", outputPath)
			}

			generated++
		}
	}

	if !ctx.Quiet {
		color.Green("Generated %d files from %d declaration files", generated, len(units))
	}

	return nil
}

// selectGenerators returns the enabled generators, narrowed by --lang.
// The json intermediate generator is always available even when the
// configuration does not mention it.
func (g *GenerateCmd) selectGenerators(config *recidx.Config) (map[string]recidx.GeneratorConfig, error) {
	generators := make(map[string]recidx.GeneratorConfig)

	for name, generator := range config.Generation.Generators {
		if generator.IsEnabled() {
			generators[name] = generator
		}
	}

	if g.Lang == "" {
		return generators, nil
	}

	if generator, ok := generators[g.Lang]; ok {
		return map[string]recidx.GeneratorConfig{g.Lang: generator}, nil
	}

	if g.Lang == "json" {
		return map[string]recidx.GeneratorConfig{
			"json": {Output: "./generated"},
		}, nil
	}

	return nil, fmt.Errorf("%w: '%s'", ErrGeneratorNotConfigured, g.Lang)
}

// emit writes one generator's output for one declaration file and returns the
// output path.
func (g *GenerateCmd) emit(lang string, generator recidx.GeneratorConfig, unit *sourceUnit) (string, error) {
	if err := os.MkdirAll(generator.Output, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	switch lang {
	case "go":
		outputPath := filepath.Join(generator.Output, unit.base+"_gen.go")

		packageName := generator.PackageName("generated")
		if unit.packageName != "" {
			packageName = unit.packageName
		}
		if g.Package != "" {
			packageName = g.Package
		}

		file, err := os.Create(outputPath)
		if err != nil {
			return "", err
		}
		defer file.Close()

		gen := gogen.New(unit.sets,
			gogen.WithPackageName(packageName),
			gogen.WithSourcePath(unit.path),
		)

		return outputPath, gen.Generate(file)
	default: // json
		outputPath := filepath.Join(generator.Output, unit.base+".json")

		file, err := os.Create(outputPath)
		if err != nil {
			return "", err
		}
		defer file.Close()

		format := intermediate.NewFileFormat(unit.path, unit.sets)

		return outputPath, format.WriteJSON(file, g.Pretty)
	}
}

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Input string `short:"i" help:"Input file or directory" type:"path"`
}

// Run executes the validate command
func (v *ValidateCmd) Run(ctx *Context) error {
	config, err := recidx.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	inputPath := v.Input
	if inputPath == "" {
		inputPath = config.InputDir
	}

	units, err := loadUnits(ctx, inputPath)
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		records := 0
		for _, unit := range units {
			records += len(unit.sets)
		}

		color.Green("Validated %d records in %d files", records, len(units))
	}

	return nil
}

// sourceUnit is one declaration file after extraction and validation.
type sourceUnit struct {
	path        string
	base        string // file name without the .rec/.rec.md extension
	packageName string // front matter override, empty for plain .rec files
	sets        []*intermediate.ValidatedFieldSet
}

// loadUnits collects, parses and validates every declaration file under
// inputPath. Every record of every file is checked even after a failure, so
// the author sees all diagnostics at once.
func loadUnits(ctx *Context, inputPath string) ([]*sourceUnit, error) {
	files, err := collectInputFiles(inputPath)
	if err != nil {
		return nil, err
	}

	units := make([]*sourceUnit, 0, len(files))
	failures := 0

	for _, file := range files {
		unit, errs := loadUnit(file)
		if len(errs) > 0 {
			failures += len(errs)

			for _, err := range errs {
				if !ctx.Quiet {
					color.Red("%s: %v", file, err)
				}
			}

			continue
		}

		units = append(units, unit)
	}

	if failures > 0 {
		return nil, fmt.Errorf("%w: %d errors", ErrValidationFailed, failures)
	}

	return units, nil
}

// loadUnit parses one declaration file and validates every record in it.
func loadUnit(path string) (*sourceUnit, []error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{err}
	}

	unit := &sourceUnit{path: path}

	var decls []*parser.RecordDeclaration

	if strings.HasSuffix(path, ".rec.md") {
		unit.base = strings.TrimSuffix(filepath.Base(path), ".rec.md")

		doc, err := markdownparser.Parse(strings.NewReader(string(content)))
		if err != nil {
			return nil, []error{err}
		}

		unit.packageName = doc.PackageName("")
		decls = doc.Declarations
	} else {
		unit.base = strings.TrimSuffix(filepath.Base(path), ".rec")

		decls, err = parser.ParseString(string(content))
		if err != nil {
			return nil, []error{err}
		}
	}

	// Validate every record even after one fails.
	var errs []error

	for _, decl := range decls {
		set, err := intermediate.Validate(intermediate.Extract(decl, path))
		if err != nil {
			errs = append(errs, err)
			continue
		}

		unit.sets = append(unit.sets, set)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return unit, nil
}

// collectInputFiles resolves inputPath to the list of declaration files.
func collectInputFiles(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotExist, inputPath)
	}
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{inputPath}, nil
	}

	var files []string

	err = filepath.Walk(inputPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if strings.HasSuffix(path, ".rec") || strings.HasSuffix(path, ".rec.md") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputFiles, inputPath)
	}

	return files, nil
}
