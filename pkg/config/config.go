// Package config provides configuration loading and validation for the
// pytree command line tools.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidIndent    = errors.New("dump indent width must be positive")
	ErrInvalidMaxWidth  = errors.New("dump max width must be positive")
	ErrInvalidMaxDepth  = errors.New("dump max depth must not be negative")
	ErrInvalidDiffLines = errors.New("diff context lines must not be negative")
	ErrInvalidStatsTop  = errors.New("stats top count must be positive")
	ErrInvalidLogLevel  = errors.New("unknown log level")
)

// Default configuration values.
const (
	defaultIndent    = 2
	defaultMaxWidth  = 80
	defaultDiffLines = 3
	defaultStatsTop  = 20
)

// Config holds all configuration for the pytree CLI.
type Config struct {
	Build   BuildConfig   `mapstructure:"build"`
	Dump    DumpConfig    `mapstructure:"dump"`
	Diff    DiffConfig    `mapstructure:"diff"`
	Stats   StatsConfig   `mapstructure:"stats"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BuildConfig holds module-construction configuration.
type BuildConfig struct {
	// Modname overrides the module name derived from the file path.
	Modname string `mapstructure:"modname"`
}

// DumpConfig holds tree-dump configuration.
type DumpConfig struct {
	Indent        int  `mapstructure:"indent"`
	MaxDepth      int  `mapstructure:"max_depth"`
	MaxWidth      int  `mapstructure:"max_width"`
	ShowIDs       bool `mapstructure:"show_ids"`
	ShowPositions bool `mapstructure:"show_positions"`
	ShowDerived   bool `mapstructure:"show_derived"`
}

// DiffConfig holds dump-comparison configuration.
type DiffConfig struct {
	ContextLines int  `mapstructure:"context_lines"`
	Color        bool `mapstructure:"color"`
}

// StatsConfig holds node-statistics configuration.
type StatsConfig struct {
	Top int `mapstructure:"top"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("pytree")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/pytree")
	}

	viperCfg.SetEnvPrefix("PYTREE")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Dump defaults.
	viperCfg.SetDefault("dump.indent", defaultIndent)
	viperCfg.SetDefault("dump.max_depth", 0)
	viperCfg.SetDefault("dump.max_width", defaultMaxWidth)
	viperCfg.SetDefault("dump.show_ids", false)
	viperCfg.SetDefault("dump.show_positions", false)
	viperCfg.SetDefault("dump.show_derived", false)

	// Diff defaults.
	viperCfg.SetDefault("diff.context_lines", defaultDiffLines)
	viperCfg.SetDefault("diff.color", true)

	// Stats defaults.
	viperCfg.SetDefault("stats.top", defaultStatsTop)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")
	viperCfg.SetDefault("logging.output", "stderr")
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Dump.Indent <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, config.Dump.Indent)
	}

	if config.Dump.MaxWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxWidth, config.Dump.MaxWidth)
	}

	if config.Dump.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxDepth, config.Dump.MaxDepth)
	}

	if config.Diff.ContextLines < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDiffLines, config.Diff.ContextLines)
	}

	if config.Stats.Top <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStatsTop, config.Stats.Top)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	return nil
}
