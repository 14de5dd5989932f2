package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "SCREENFETCH"
	envConfigPath = "SCREENFETCH_CONFIG"

	defaultLogLevel = "warn"
	defaultFormat   = FormatCompact
	defaultColor    = ColorAuto
)

// Output formats
const (
	FormatCompact  = "compact"
	FormatDetailed = "detailed"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// AppConfig holds application configuration
type AppConfig struct {
	// LogLevel is one of debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
	// Format selects the report renderer
	Format string `mapstructure:"format"`
	// Color is auto, always or never
	Color string `mapstructure:"color"`
	// DPIQuirkRetry re-derives the scale geometrically when drivers report 122%
	DPIQuirkRetry bool `mapstructure:"dpi_quirk_retry"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-level":       "log_level",
	"format":          "format",
	"color":           "color",
	"dpi-quirk-retry": "dpi_quirk_retry",
}

// Flags returns the command line flags understood by Load
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("screenfetch", pflag.ContinueOnError)
	fs.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.StringP("format", "f", defaultFormat, "output format (compact, detailed, json, yaml)")
	fs.String("color", defaultColor, "colorize output (auto, always, never)")
	fs.Bool("dpi-quirk-retry", true, "re-derive a 122% scale from the desktop geometry")
	return fs
}

// Load layers defaults, the file named by SCREENFETCH_CONFIG, SCREENFETCH_*
// environment variables and fs, in increasing precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*AppConfig, error) {
	v := viper.New()
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("color", defaultColor)
	v.SetDefault("dpi_quirk_retry", true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(envConfigPath); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case FormatCompact, FormatDetailed, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}

	c.Color = strings.ToLower(c.Color)
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	return nil
}
