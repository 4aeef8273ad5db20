package recidx

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the recidx configuration
type Config struct {
	InputDir   string           `yaml:"input_dir"`
	Generation GenerationConfig `yaml:"generation"`
}

// GenerationConfig represents code generation settings
type GenerationConfig struct {
	Validate   bool                       `yaml:"validate"`
	Generators map[string]GeneratorConfig `yaml:"generators"`
}

// GeneratorConfig represents a single generator configuration
type GeneratorConfig struct {
	Output   string         `yaml:"output"`
	Disabled *bool          `yaml:"disabled"` // Pointer to distinguish between unset and true. If nil or false, generator is enabled
	Settings map[string]any `yaml:"settings,omitempty"`
}

// IsEnabled returns true if the generator is not explicitly disabled
// Generators are enabled by default unless disabled: true is set
func (g *GeneratorConfig) IsEnabled() bool {
	return g.Disabled == nil || !*g.Disabled
}

// PackageName returns the generator's package setting, or def when unset.
func (g *GeneratorConfig) PackageName(def string) string {
	if g.Settings != nil {
		if v, ok := g.Settings["package"].(string); ok && v != "" {
			return v
		}
	}

	return def
}

// LoadConfig loads configuration from the given path, falling back to defaults
// when the file does not exist.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate the configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// Apply defaults for missing values
	applyDefaults(&config)

	// Expand environment variables
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	validGenerators := map[string]bool{
		"json": true,
		"go":   true,
	}

	for name, generator := range config.Generation.Generators {
		if !validGenerators[name] {
			return fmt.Errorf("%w: unknown generator '%s': must be one of json, go", ErrConfigValidation, name)
		}

		// Validate output path is specified if enabled
		if generator.IsEnabled() && generator.Output == "" {
			return fmt.Errorf("%w: generator '%s': output path is required when enabled", ErrConfigValidation, name)
		}
	}

	return nil
}

func getDefaultConfig() *Config {
	return &Config{
		InputDir: "./records",
		Generation: GenerationConfig{
			Validate: true,
			Generators: map[string]GeneratorConfig{
				"go": {
					Output: "./generated",
					Settings: map[string]any{
						"package": "generated",
					},
				},
			},
		},
	}
}

func applyDefaults(config *Config) {
	if config.InputDir == "" {
		config.InputDir = "./records"
	}

	if config.Generation.Generators == nil {
		config.Generation.Generators = getDefaultConfig().Generation.Generators
	}
}

func loadEnvFiles() error {
	// .env is optional; only a malformed file is an error
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	return nil
}

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})

	s = bareVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		return os.Getenv(varName)
	})

	return s
}

func expandConfigEnvVars(config *Config) {
	config.InputDir = expandEnvVars(config.InputDir)

	for name, generator := range config.Generation.Generators {
		generator.Output = expandEnvVars(generator.Output)
		config.Generation.Generators[name] = generator
	}
}
