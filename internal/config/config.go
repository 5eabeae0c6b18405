// Package config manages application configuration from config files,
// environment variables, and default values.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values for optional configuration parameters. The report defaults
// mirror the CLI defaults: UTC and a top five.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultTimezone  = "+0000"
	DefaultLimit     = 5
)

// Config defines the application configuration. Values can be set via
// config.yaml or environment variables prefixed with REACTOP_
// (e.g. REACTOP_TELEGRAM_TOKEN); CLI flags override both.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Report   ReportConfig   `mapstructure:"report"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// ReportConfig carries the core pipeline parameters: which export to read,
// which calendar year to rank, in which fixed timezone offset, and how many
// entries to keep. The timezone string itself is resolved (and rejected if
// malformed) by the timezone package before any record is processed.
type ReportConfig struct {
	File     string `mapstructure:"file"     validate:"required"`
	Year     int    `mapstructure:"year"     validate:"required"`
	Timezone string `mapstructure:"timezone" validate:"required"`
	Limit    int    `mapstructure:"limit"    validate:"min=0"`
}

// TelegramConfig configures the optional publish mode. Token and ChatID are
// only required when publishing is enabled.
type TelegramConfig struct {
	Publish bool   `mapstructure:"publish"`
	Token   string `mapstructure:"token"   validate:"required_if=Publish true"`
	ChatID  int64  `mapstructure:"chat_id" validate:"required_if=Publish true"`
}

// Load reads configuration from the optional config file and REACTOP_*
// environment variables over the defaults. Validation is deferred to
// Validate so the caller can apply CLI flag overrides first.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("REACTOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine, everything has a default or flag.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the fully assembled configuration, after any CLI flag
// overrides have been applied.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetDefault("report.timezone", DefaultTimezone)
	v.SetDefault("report.limit", DefaultLimit)

	v.SetDefault("telegram.publish", false)
}
