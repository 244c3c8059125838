package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel = "info"
	defaultFormat   = FormatText
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	LogLevel       string            `yaml:"log_level"`
	Format         string            `yaml:"format"`
	PropertiesFile string            `yaml:"properties_file"`
	Properties     map[string]string `yaml:"-"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	LogLevel       string `yaml:"log_level"`
	Format         string `yaml:"format"`
	PropertiesFile string `yaml:"properties_file"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	LogLevel       *string
	Format         *string
	PropertiesFile *string
	Properties     map[string]string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables
	applyEnvConfig(&cfg)

	// YAML file overrides the environment
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// UsesProperties reports whether overrides should come from a property table
// instead of the process environment.
func (c Config) UsesProperties() bool {
	return c.PropertiesFile != "" || len(c.Properties) > 0
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LogLevel: defaultLogLevel,
		Format:   defaultFormat,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	if yamlCfg.PropertiesFile != "" {
		cfg.PropertiesFile = yamlCfg.PropertiesFile
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if level := strings.TrimSpace(os.Getenv("PBPATHS_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}
	if format := strings.TrimSpace(os.Getenv("PBPATHS_FORMAT")); format != "" {
		cfg.Format = format
	}
	if file := strings.TrimSpace(os.Getenv("PBPATHS_PROPERTIES")); file != "" {
		cfg.PropertiesFile = file
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
	if overrides.Format != nil && *overrides.Format != "" {
		cfg.Format = *overrides.Format
	}
	if overrides.PropertiesFile != nil && *overrides.PropertiesFile != "" {
		cfg.PropertiesFile = *overrides.PropertiesFile
	}
	if len(overrides.Properties) > 0 {
		cfg.Properties = make(map[string]string, len(overrides.Properties))
		for k, v := range overrides.Properties {
			cfg.Properties[k] = v
		}
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	switch cfg.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatYAML, cfg.Format)
	}
	return nil
}
