package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. HEROES_DISPLAY_FORMAT.
const EnvPrefix = "HEROES"

// FlagKeys maps config keys to the command-line flags that override them.
var FlagKeys = map[string]string{
	"display.format":    "format",
	"display.case":      "case",
	"display.color":     "color",
	"display.sort_diff": "sort-diff",
	"seed.file":         "seed",
	"log.level":         "log-level",
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Display: DisplayConfig{Format: "text", Case: "lower", Color: true},
		Log:     LogConfig{Level: "warn"},
	}
}

// Load builds a Config. Precedence, highest first: changed flags, environment,
// config file, defaults. configPath may be empty; flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("display.format", d.Display.Format)
	v.SetDefault("display.case", d.Display.Case)
	v.SetDefault("display.color", d.Display.Color)
	v.SetDefault("display.sort_diff", d.Display.SortDiff)
	v.SetDefault("seed.file", d.Seed.File)
	v.SetDefault("log.level", d.Log.Level)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}
