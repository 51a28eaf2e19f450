// Package cmd implements the rapbattle command line.
package cmd

import (
	"strings"

	"github.com/Iron-Ham/rapbattle/internal/config"
	"github.com/Iron-Ham/rapbattle/internal/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"rounds":    "battle.rounds",
	"seed":      "battle.seed",
	"roster":    "roster.file",
	"pace":      "output.pace_ms",
	"tui":       "output.tui",
	"log-level": "logging.level",
	"log-dir":   "logging.dir",
}

// NewRootCmd builds the rapbattle command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rapbattle",
		Short: "Simulated rap battles in your terminal",
		Long: `rapbattle draws two rappers from a roster and pits them against each other
for a fixed number of rounds. Each round both rappers drop a line, the judges
score the lines, and the better line takes the round.

Pass --seed to replay a battle exactly.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              runBattle,
	}

	defaults := config.Default()
	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/rapbattle/config.yaml)")
	flags.IntP("rounds", "r", defaults.Battle.Rounds, "number of rounds")
	flags.Int64P("seed", "s", defaults.Battle.Seed, "random seed, 0 picks a fresh one")
	flags.String("roster", defaults.Roster.File, "YAML roster file (default is the built-in roster)")
	flags.Int("pace", defaults.Output.PaceMs, "milliseconds between beats, 0 disables pauses")
	flags.Bool("tui", defaults.Output.TUI, "show the battle in a live terminal view")
	flags.String("log-level", defaults.Logging.Level, "log level: debug, info, warn, error")
	flags.String("log-dir", defaults.Logging.Dir, "write a JSON log to this directory and enable logging")

	root.AddCommand(newRosterCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// A missing .env file is the common case.
	_ = godotenv.Load()

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	flags := cmd.Root().PersistentFlags()
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	if flags.Changed("log-dir") {
		viper.Set("logging.enabled", true)
	}

	cfgFile, _ := flags.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/rapbattle")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("RAPBATTLE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., RAPBATTLE_BATTLE_ROUNDS for battle.rounds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		cfgErr := errors.NewConfigurationError("failed to read config file", err)
		if cfgFile != "" {
			cfgErr = cfgErr.WithField("config", cfgFile)
		}
		return cfgErr
	}
	return nil
}
