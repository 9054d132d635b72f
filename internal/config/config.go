package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/easycodec/internal/constants"
	"github.com/oshokin/easycodec/internal/logger"
	"github.com/oshokin/easycodec/internal/utils"
)

// OutputFormat selects how processed items are written.
type OutputFormat string

const (
	// OutputFormatPlain writes one result per line.
	OutputFormatPlain OutputFormat = "plain"
	// OutputFormatYAML writes a YAML list of input/output records.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatJSON writes a JSON array of input/output records.
	OutputFormatJSON OutputFormat = "json"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// OutputFormat is the name of the result format: plain, yaml or json.
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	// OutputPath is the file results are written to. Empty means standard output.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	// MaxInputSize limits the size of a single input item (e.g., "1MB"). "0" or empty disables the limit.
	MaxInputSize string `mapstructure:"max_input_size" yaml:"max_input_size"`
	// MaxConcurrentWorkers is the maximum number of items processed simultaneously.
	MaxConcurrentWorkers int64 `mapstructure:"max_concurrent_workers" yaml:"max_concurrent_workers"`
	// CacheSize is the number of memoized results. 0 disables the cache.
	CacheSize int64 `mapstructure:"cache_size" yaml:"cache_size"`
	// UniqueInputs indicates whether duplicate input items are dropped.
	UniqueInputs bool `mapstructure:"unique_inputs" yaml:"unique_inputs"`
	// ShowProgress indicates whether a progress bar is drawn while writing results to a file.
	ShowProgress bool `mapstructure:"show_progress" yaml:"show_progress"`
	// RotShift is the rotation used by the rot scheme.
	RotShift int64 `mapstructure:"rot_shift" yaml:"rot_shift"`
	// HexLowercase indicates whether the hex scheme emits lower-case digits.
	HexLowercase bool `mapstructure:"hex_lowercase" yaml:"hex_lowercase"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
	// ParsedOutputFormat is the validated output format.
	ParsedOutputFormat OutputFormat `mapstructure:"-" yaml:"-"`
	// ParsedMaxInputSize is the parsed input size limit in bytes, 0 when unlimited.
	ParsedMaxInputSize int64 `mapstructure:"-" yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".easycodec" + constants.ExtensionYAML

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"

	// DefaultMaxInputSize is the default limit for a single input item.
	DefaultMaxInputSize = "16MB"

	// DefaultMaxConcurrentWorkers is the default size of the worker pool.
	DefaultMaxConcurrentWorkers = 4

	// DefaultCacheSize is the default number of memoized results.
	DefaultCacheSize = 1024

	// DefaultRotShift is the default rotation of the rot scheme (ROT13).
	DefaultRotShift = 13
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownOutputFormat indicates that the output format is not recognized.
	ErrUnknownOutputFormat = errors.New("unknown output format")
	// ErrInvalidConcurrentWorkers indicates that the worker count is invalid.
	ErrInvalidConcurrentWorkers = errors.New("max concurrent workers must be a positive integer")
	// ErrInvalidCacheSize indicates that the cache size is negative.
	ErrInvalidCacheSize = errors.New("cache size cannot be negative")
	// ErrConfigFileExists indicates that a configuration file would be overwritten.
	ErrConfigFileExists = errors.New("configuration file already exists")
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		LogLevel:             DefaultLogLevel,
		OutputFormat:         string(OutputFormatPlain),
		MaxInputSize:         DefaultMaxInputSize,
		MaxConcurrentWorkers: DefaultMaxConcurrentWorkers,
		CacheSize:            DefaultCacheSize,
		ShowProgress:         true,
		RotShift:             DefaultRotShift,
	}
}

// LoadConfig loads configuration settings from a YAML file.
// An empty filename reads DefaultConfigFilename when it exists and falls back to defaults otherwise.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	switch {
	case configFilename != "":
		v.SetConfigFile(configFilename)
	default:
		isExist, err := utils.IsFileExist(DefaultConfigFilename)
		if err != nil {
			return nil, fmt.Errorf("failed to check config file: %w", err)
		}

		if isExist {
			v.SetConfigFile(DefaultConfigFilename)
		}
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	outputFormat := OutputFormat(strings.ToLower(strings.TrimSpace(cfg.OutputFormat)))
	switch outputFormat {
	case OutputFormatPlain, OutputFormatYAML, OutputFormatJSON:
		cfg.ParsedOutputFormat = outputFormat
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownOutputFormat, cfg.OutputFormat)
	}

	var parsedMaxInputSize uint64

	maxInputSize := strings.TrimSpace(cfg.MaxInputSize)
	if maxInputSize != "" && maxInputSize != "0" {
		var err error

		parsedMaxInputSize, err = humanize.ParseBytes(maxInputSize)
		if err != nil {
			return fmt.Errorf("failed to parse max input size: %w", err)
		}
	}

	cfg.ParsedMaxInputSize = utils.SafeUint64ToInt64(parsedMaxInputSize)

	if cfg.MaxConcurrentWorkers <= 0 {
		return ErrInvalidConcurrentWorkers
	}

	if cfg.CacheSize < 0 {
		return ErrInvalidCacheSize
	}

	return nil
}

// SaveConfig writes cfg to configFilename as YAML. An existing file is kept unless overwrite is set.
func SaveConfig(cfg *Config, configFilename string, overwrite bool) error {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	isExist, err := utils.IsFileExist(configFilename)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if isExist && !overwrite {
		return fmt.Errorf("%w: %s", ErrConfigFileExists, configFilename)
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFilename, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setDefaults registers every field of defaults with viper so that partial files inherit them.
func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output_format", defaults.OutputFormat)
	v.SetDefault("output_path", defaults.OutputPath)
	v.SetDefault("max_input_size", defaults.MaxInputSize)
	v.SetDefault("max_concurrent_workers", defaults.MaxConcurrentWorkers)
	v.SetDefault("cache_size", defaults.CacheSize)
	v.SetDefault("unique_inputs", defaults.UniqueInputs)
	v.SetDefault("show_progress", defaults.ShowProgress)
	v.SetDefault("rot_shift", defaults.RotShift)
	v.SetDefault("hex_lowercase", defaults.HexLowercase)
}
