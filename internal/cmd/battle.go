package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Iron-Ham/rapbattle/internal/battle"
	"github.com/Iron-Ham/rapbattle/internal/config"
	"github.com/Iron-Ham/rapbattle/internal/event"
	"github.com/Iron-Ham/rapbattle/internal/judge"
	"github.com/Iron-Ham/rapbattle/internal/logging"
	"github.com/Iron-Ham/rapbattle/internal/random"
	"github.com/Iron-Ham/rapbattle/internal/report"
	"github.com/Iron-Ham/rapbattle/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func runBattle(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	r, source, err := loadRoster(cfg)
	if err != nil {
		return err
	}

	seed := cfg.Battle.Seed
	if !cfg.Battle.Seeded() {
		seed = freshSeed()
	}
	// One source drives the draw, line selection and judging, so a seed
	// replays the whole battle.
	src := random.New(uint64(seed))

	a, b, err := r.Draw(src)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	log := logger.WithBattle(id)
	log.Info("battle drawn",
		"roster", source,
		"seed", seed,
		"challenger", a.Name(),
		"opponent", b.Name(),
		"rounds", cfg.Battle.Rounds,
	)

	bus := event.NewBus(log)
	bus.SubscribeAll(func(e event.Event) {
		log.Debug("battle event", "type", e.EventType(), "event", e)
	})

	out := cmd.OutOrStdout()
	terminal := isTerminal(out)
	pace := cfg.Output.Pace()
	if !terminal {
		pace = 0
	}

	text := report.NewText(out, pace)
	text.Banner()
	text.Roster(r)
	text.Starting()

	bcfg := battle.Config{
		Rounds: cfg.Battle.Rounds,
		Lines:  src,
		Judge:  judge.New(src),
		ID:     id,
	}

	useTUI := cfg.Output.TUI && terminal
	if cfg.Output.TUI && !terminal {
		log.Warn("live view needs a terminal, falling back to plain output")
	}

	if useTUI {
		bcfg.Reporter = battle.NewBusReporter(bus)
	} else {
		bcfg.Reporter = battle.MultiReporter{text, battle.NewBusReporter(bus)}
	}

	bt, err := battle.New(a, b, bcfg)
	if err != nil {
		return err
	}

	if useTUI {
		m := tui.New(bt, bus, report.NewStyles(out), pace)
		if err := tui.Run(m, tea.WithOutput(out), tea.WithInput(cmd.InOrStdin())); err != nil {
			return fmt.Errorf("live view failed: %w", err)
		}
	} else {
		bt.Run()
	}

	res, _ := bt.Result()
	log.Info("battle finished",
		"outcome", string(res.Outcome),
		"score_a", res.A.Score,
		"score_b", res.B.Score,
	)

	text.Seed(seed)
	return nil
}

// newLogger returns the configured logger, or a no-op logger when logging
// is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
}

// freshSeed returns a non-zero seed that fits the --seed flag.
func freshSeed() int64 {
	for {
		if s := int64(random.FreshSeed() >> 1); s != 0 {
			return s
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
