package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Iron-Ham/rapbattle/internal/errors"
	"github.com/spf13/viper"
)

// Config represents the complete rapbattle configuration
type Config struct {
	Battle  BattleConfig  `mapstructure:"battle" yaml:"battle"`
	Roster  RosterConfig  `mapstructure:"roster" yaml:"roster"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// BattleConfig controls how a battle is played
type BattleConfig struct {
	// Rounds is the number of rounds per battle (default: 3, must be positive)
	Rounds int `mapstructure:"rounds" yaml:"rounds"`
	// Seed fixes the random sequence so a battle can be replayed (0 = pick a fresh seed)
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// RosterConfig controls where competitors come from
type RosterConfig struct {
	// File is a YAML roster to use instead of the built-in one (default: "")
	File string `mapstructure:"file" yaml:"file"`
}

// OutputConfig controls terminal presentation
type OutputConfig struct {
	// PaceMs is the pause between display beats in milliseconds (default: 1000, 0 = no pauses).
	// Pacing is skipped when stdout is not a terminal.
	PaceMs int `mapstructure:"pace_ms" yaml:"pace_ms"`
	// TUI shows the battle in an interactive live view (default: false)
	TUI bool `mapstructure:"tui" yaml:"tui"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled turns on JSON debug logging (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where battle.log is written. Empty logs to stderr.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Battle: BattleConfig{
			Rounds: 3,
			Seed:   0,
		},
		Roster: RosterConfig{
			File: "",
		},
		Output: OutputConfig{
			PaceMs: 1000,
			TUI:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Dir:     "",
		},
	}
}

// Pace returns the display pause as a time.Duration
func (c *OutputConfig) Pace() time.Duration {
	return time.Duration(c.PaceMs) * time.Millisecond
}

// Seeded reports whether a fixed seed was requested
func (c *BattleConfig) Seeded() bool {
	return c.Seed != 0
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("battle.rounds", defaults.Battle.Rounds)
	viper.SetDefault("battle.seed", defaults.Battle.Seed)

	viper.SetDefault("roster.file", defaults.Roster.File)

	viper.SetDefault("output.pace_ms", defaults.Output.PaceMs)
	viper.SetDefault("output.tui", defaults.Output.TUI)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it.
// Any failure is returned as a ConfigurationError.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigurationError("failed to decode configuration",
			fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err))
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.NewConfigurationError("configuration is invalid",
			errors.Join(errors.ErrInvalidConfig, ValidationErrors(errs))).
			WithField(errs[0].Field, errs[0].Value)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rapbattle")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rapbattle"
	}
	return filepath.Join(home, ".config", "rapbattle")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
