package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Fallback FallbackConfig `yaml:"fallback" envconfig:"FALLBACK"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration. Diagnostics never go to
// stdout because stdout carries the aggregation result.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// FallbackConfig governs synthetic defaults for inputs whose header is
// missing the expected columns.
type FallbackConfig struct {
	Enabled             bool    `yaml:"enabled" envconfig:"ENABLED"`
	PlaceholderCategory string  `yaml:"placeholder_category" envconfig:"PLACEHOLDER_CATEGORY" validate:"required"`
	ValueStep           float64 `yaml:"value_step" envconfig:"VALUE_STEP"`
}

// OutputConfig controls how the aggregation result is serialized.
type OutputConfig struct {
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json csv"`
	Pretty bool   `yaml:"pretty" envconfig:"PRETTY"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stderr",
			FilePath: "logs/aggregate.log",
		},
		Fallback: FallbackConfig{
			Enabled:             true,
			PlaceholderCategory: "Uncategorized",
			ValueStep:           10,
		},
		Output: OutputConfig{
			Format: "json",
			Pretty: false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, in increasing order of precedence. filePath may be
// empty, in which case only defaults and the environment apply.
func Load(filePath string) (*Config, error) {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Default()

	if filePath != "" {
		if err := loadFromFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := envconfig.Process("AGG", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate checks the configuration using struct tags.
func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("invalid value for %s (rule %q)", first.Namespace(), first.Tag())
		}
		return err
	}
	if (c.Logging.Output == "file" || c.Logging.Output == "both") && c.Logging.FilePath == "" {
		return fmt.Errorf("logging.file_path is required when logging.output is %q", c.Logging.Output)
	}
	return nil
}
