// Package config loads CLI settings from defaults, an optional YAML file,
// HEROES_* environment variables and command-line flags.
package config

// Config holds all application configuration.
type Config struct {
	Display DisplayConfig `mapstructure:"display" validate:"required"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
}

// DisplayConfig controls how records are shown.
type DisplayConfig struct {
	Format   string `mapstructure:"format" validate:"required,oneof=text table md json"`
	Case     string `mapstructure:"case" validate:"required,oneof=upper lower as-entered"`
	Color    bool   `mapstructure:"color"`
	SortDiff bool   `mapstructure:"sort_diff"`
}

// SeedConfig points at an optional YAML seed file that replaces the
// built-in catalog.
type SeedConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
