package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/rapbattle/internal/errors"
	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.Battle.Rounds != 3 {
		t.Errorf("Battle.Rounds = %d, want 3", cfg.Battle.Rounds)
	}
	if cfg.Battle.Seeded() {
		t.Error("Battle.Seeded() should be false by default")
	}
	if cfg.Output.PaceMs != 1000 {
		t.Errorf("Output.PaceMs = %d, want 1000", cfg.Output.PaceMs)
	}
	if cfg.Output.TUI {
		t.Error("Output.TUI should be false by default")
	}
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default().Validate() = %v, want no errors", errs)
	}
}

func TestOutputConfig_Pace(t *testing.T) {
	c := OutputConfig{PaceMs: 250}
	if got := c.Pace(); got != 250*time.Millisecond {
		t.Errorf("Pace() = %v, want 250ms", got)
	}
}

func TestValidate(t *testing.T) {
	rosterFile := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(rosterFile, []byte("competitors: []\n"), 0644); err != nil {
		t.Fatalf("failed to write roster: %v", err)
	}

	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"zero rounds", func(c *Config) { c.Battle.Rounds = 0 }, "battle.rounds"},
		{"negative rounds", func(c *Config) { c.Battle.Rounds = -1 }, "battle.rounds"},
		{"negative pace", func(c *Config) { c.Output.PaceMs = -5 }, "output.pace_ms"},
		{"huge pace", func(c *Config) { c.Output.PaceMs = MaxPaceMs + 1 }, "output.pace_ms"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"missing roster file", func(c *Config) { c.Roster.File = filepath.Join(t.TempDir(), "none.yaml") }, "roster.file"},
		{"roster file is dir", func(c *Config) { c.Roster.File = t.TempDir() }, "roster.file"},
		{"existing roster file", func(c *Config) { c.Roster.File = rosterFile }, ""},
		{"upper-case log level", func(c *Config) { c.Logging.Level = "DEBUG" }, ""},
		{"one round", func(c *Config) { c.Battle.Rounds = 1 }, ""},
		{"no pacing", func(c *Config) { c.Output.PaceMs = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("empty Error() = %q, want empty", got)
	}

	one := ValidationErrors{{Field: "battle.rounds", Value: 0, Message: "must be at least 1"}}
	if got := one.Error(); got != "battle.rounds: must be at least 1 (got: 0)" {
		t.Errorf("single Error() = %q", got)
	}

	two := append(one, ValidationError{Field: "output.pace_ms", Value: -1, Message: "must be non-negative"})
	got := two.Error()
	if !strings.HasPrefix(got, "2 validation errors:") || !strings.Contains(got, "output.pace_ms") {
		t.Errorf("multi Error() = %q", got)
	}
}

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	SetDefaults()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Battle.Rounds != 3 || cfg.Output.PaceMs != 1000 {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	resetViper(t)
	viper.Set("battle.rounds", 5)
	viper.Set("battle.seed", 99)
	viper.Set("output.tui", true)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Battle.Rounds != 5 {
		t.Errorf("Battle.Rounds = %d, want 5", cfg.Battle.Rounds)
	}
	if cfg.Battle.Seed != 99 || !cfg.Battle.Seeded() {
		t.Errorf("Battle.Seed = %d, want 99", cfg.Battle.Seed)
	}
	if !cfg.Output.TUI {
		t.Error("Output.TUI = false, want true")
	}
}

func TestLoad_FromFile(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "battle:\n  rounds: 7\noutput:\n  pace_ms: 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Battle.Rounds != 7 || cfg.Output.PaceMs != 0 {
		t.Errorf("Load() = %+v, want rounds 7 and pace 0", cfg)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_InvalidRoundsFailsFast(t *testing.T) {
	resetViper(t)
	viper.Set("battle.rounds", 0)

	cfg, err := Load()
	if cfg != nil {
		t.Error("Load() returned a config alongside an error")
	}
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}

	var cfgErr *errors.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error %T is not a ConfigurationError", err)
	}
	if cfgErr.Field != "battle.rounds" {
		t.Errorf("Field = %q, want %q", cfgErr.Field, "battle.rounds")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 1 {
		t.Errorf("expected wrapped ValidationErrors, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "rapbattle") {
		t.Errorf("ConfigDir() = %q", got)
	}
	if got := ConfigFile(); got != filepath.Join("/tmp/xdg", "rapbattle", "config.yaml") {
		t.Errorf("ConfigFile() = %q", got)
	}
}
