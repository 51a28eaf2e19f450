package battle

import (
	"github.com/Iron-Ham/rapbattle/internal/errors"
	"github.com/Iron-Ham/rapbattle/internal/judge"
	"github.com/Iron-Ham/rapbattle/internal/random"
	"github.com/Iron-Ham/rapbattle/internal/roster"
	"github.com/google/uuid"
)

// Config holds everything a battle needs besides the two competitors.
type Config struct {
	// Rounds is the number of rounds to play. It must be positive.
	Rounds int
	// Lines is the random source used to pick each competitor's line.
	Lines random.Source
	// Judge scores each round.
	Judge *judge.Judge
	// Reporter receives progress. Nil discards it.
	Reporter Reporter
	// ID identifies the battle in events and logs. A UUID is generated when empty.
	ID string
}

// Battle is a sequence of rounds between exactly two competitors.
// It is not safe for concurrent use.
type Battle struct {
	id       string
	a        *roster.Competitor
	b        *roster.Competitor
	rounds   int
	current  int
	status   Status
	lines    random.Source
	judge    *judge.Judge
	reporter Reporter
	result   *Result
}

// New validates the setup and returns a battle in NotStarted state.
// Every problem is reported here as a ConfigurationError; a battle that
// was created successfully always runs to completion.
func New(a, b *roster.Competitor, cfg Config) (*Battle, error) {
	if a == nil || b == nil {
		return nil, errors.NewConfigurationError("a battle needs two competitors", errors.ErrMissingCompetitor)
	}
	if a == b {
		return nil, errors.NewConfigurationError("a battle needs two different competitors", errors.ErrSameCompetitor).
			WithField("competitor", a.Name())
	}
	if err := roster.ValidateCompetitor(a); err != nil {
		return nil, err
	}
	if err := roster.ValidateCompetitor(b); err != nil {
		return nil, err
	}
	if cfg.Rounds <= 0 {
		return nil, errors.NewConfigurationError("a battle needs at least one round", errors.ErrInvalidRounds).
			WithField("battle.rounds", cfg.Rounds)
	}
	if cfg.Lines == nil {
		return nil, errors.NewConfigurationError("line selection needs a random source", errors.ErrMissingSource)
	}
	if cfg.Judge == nil {
		return nil, errors.NewConfigurationError("a battle needs a judge", errors.ErrMissingSource)
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Battle{
		id:       id,
		a:        a,
		b:        b,
		rounds:   cfg.Rounds,
		status:   StatusNotStarted,
		lines:    cfg.Lines,
		judge:    cfg.Judge,
		reporter: reporter,
	}, nil
}

// ID returns the battle identifier.
func (bt *Battle) ID() string { return bt.id }

// Status returns the current lifecycle state.
func (bt *Battle) Status() Status { return bt.status }

// Rounds returns the configured number of rounds.
func (bt *Battle) Rounds() int { return bt.rounds }

// CurrentRound returns the number of rounds played so far.
func (bt *Battle) CurrentRound() int { return bt.current }

// Challenger returns the competitor who drops the first line each round.
func (bt *Battle) Challenger() *roster.Competitor { return bt.a }

// Opponent returns the competitor who answers.
func (bt *Battle) Opponent() *roster.Competitor { return bt.b }

// Step plays the next round. When it plays the last round the battle
// becomes Finished and the final result is reported. Calling Step on a
// finished battle returns ErrBattleFinished.
func (bt *Battle) Step() (RoundResult, error) {
	if bt.status == StatusFinished {
		return RoundResult{}, errors.ErrBattleFinished
	}
	if bt.status == StatusNotStarted {
		bt.status = StatusInProgress
		bt.reporter.BattleStart(bt.id, standing(bt.a), standing(bt.b), bt.rounds)
	}

	round := bt.current + 1
	bt.reporter.RoundStart(round)

	lineA := bt.a.Line(bt.lines)
	bt.reporter.Line(round, standing(bt.a), lineA)

	lineB := bt.b.Line(bt.lines)
	bt.reporter.Line(round, standing(bt.b), lineB)

	verdict := bt.judge.Decide(lineA, lineB)
	switch verdict.Outcome {
	case judge.AWins:
		bt.a.Award()
	case judge.BWins:
		bt.b.Award()
	}
	bt.current = round

	res := RoundResult{
		Round:   round,
		Verdict: verdict,
		A:       standing(bt.a),
		B:       standing(bt.b),
	}
	bt.reporter.RoundResult(res)

	if bt.current == bt.rounds {
		bt.finish()
	}
	return res, nil
}

// Run plays every remaining round and returns the final result.
func (bt *Battle) Run() Result {
	for bt.status != StatusFinished {
		// Step only fails on a finished battle, which the loop condition excludes.
		_, _ = bt.Step()
	}
	return *bt.result
}

// Result returns the final result once the battle is finished.
func (bt *Battle) Result() (Result, bool) {
	if bt.result == nil {
		return Result{}, false
	}
	return *bt.result, true
}

func (bt *Battle) finish() {
	a, b := standing(bt.a), standing(bt.b)
	bt.result = &Result{
		A:       a,
		B:       b,
		Outcome: judge.Compare(a.Score, b.Score),
	}
	bt.status = StatusFinished
	bt.reporter.FinalResult(*bt.result)
}

func standing(c *roster.Competitor) Standing {
	return Standing{Name: c.Name(), Style: c.Style(), Score: c.Score()}
}
