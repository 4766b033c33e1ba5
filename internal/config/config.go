package config

import (
	"fmt"
	"log"
	"strings"

	"cvmenu/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
// Precedence order:
// 1. Environment variables (CVMENU_GENERATOR_COMMAND, etc.) - Highest priority
// 2. Config file values
// 3. Default values - Lowest priority
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	App       AppConfig       `mapstructure:"app"`
}

// GeneratorConfig describes how to invoke the external CV generator
type GeneratorConfig struct {
	Command   string `mapstructure:"command"`   // Interpreter or binary to run
	Script    string `mapstructure:"script"`    // Generator script path
	Input     string `mapstructure:"input"`     // Resume file passed to every invocation
	OutputDir string `mapstructure:"outputDir"` // Directory the generator writes to
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel string `mapstructure:"logLevel"`
}

// LoadConfig loads configuration from environment variables and a config file
func LoadConfig() (*Config, error) {
	// The generator loads the same .env itself; loading it here keeps the
	// capability gate in sync with what the child process will see.
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set up environment variable handling
	v.SetEnvPrefix("CVMENU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set up config file handling
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/cvmenu/")
	v.AddConfigPath("$HOME/.cvmenu")
	v.AddConfigPath(".")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Printf("[CONFIG] Loaded config file: %s", v.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate the configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Generator Configuration
	v.SetDefault("generator.command", "python3")
	v.SetDefault("generator.script", "generator/generate.py")
	v.SetDefault("generator.input", "resume.json")
	v.SetDefault("generator.outputDir", "generator/output_local")

	// App Configuration
	v.SetDefault("app.logLevel", "info")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Generator.Command == "" {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig, "generator command is required", nil)
	}
	if c.Generator.Script == "" {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig, "generator script is required", nil)
	}
	if c.Generator.Input == "" {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig, "generator input file is required", nil)
	}
	if c.Generator.OutputDir == "" {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig, "generator output directory is required", nil)
	}

	switch c.App.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("invalid log level: %s", c.App.LogLevel), nil)
	}

	return nil
}
