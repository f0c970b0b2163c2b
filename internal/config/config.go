// Package config loads settings from defaults, an optional file and ECIES_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. ECIES_LOG_LEVEL.
const EnvPrefix = "ECIES"

// Message formats produced by encryption.
const (
	FormatNative = "native"
	FormatCompat = "compat"
)

// Config is the full configuration.
type Config struct {
	Log    LogConfig `mapstructure:"log"`
	Format string    `mapstructure:"format" validate:"oneof=native compat"`
}

// LogConfig controls diagnostics output. Key material is never logged.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled off"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Option customizes loading.
type Option func(*viper.Viper)

// WithFile reads path in addition to the environment. The type is taken from
// the extension.
func WithFile(path string) Option {
	return func(v *viper.Viper) {
		if path != "" {
			v.SetConfigFile(path)
		}
	}
}

// WithDefaultLevel overrides the default log level.
func WithDefaultLevel(level string) Option {
	return func(v *viper.Viper) {
		v.SetDefault("log.level", level)
	}
}

// WithLevel forces the log level over file and environment values.
func WithLevel(level string) Option {
	return func(v *viper.Viper) {
		v.Set("log.level", level)
	}
}

var validate = validator.New()

// Load builds a Config. Without options only defaults and the environment are
// consulted.
func Load(opts ...Option) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("format", FormatNative)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, opt := range opts {
		opt(v)
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Format = strings.ToLower(cfg.Format)
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
