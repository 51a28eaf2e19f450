package battle

import "github.com/Iron-Ham/rapbattle/internal/judge"

// Status represents where a battle is in its lifecycle.
type Status string

const (
	// StatusNotStarted indicates no round has been played.
	StatusNotStarted Status = "not_started"

	// StatusInProgress indicates at least one round has been played.
	StatusInProgress Status = "in_progress"

	// StatusFinished indicates all rounds have been played.
	StatusFinished Status = "finished"
)

// DefaultRounds is the number of rounds in a standard battle.
const DefaultRounds = 3

// Standing is a snapshot of a competitor's tally.
type Standing struct {
	Name  string
	Style string
	Score int
}

// RoundResult describes one judged round. It is not retained by the battle.
type RoundResult struct {
	Round int
	judge.Verdict

	// A and B are the tallies after this round was credited.
	A Standing
	B Standing
}

// Result is the final outcome of a battle.
type Result struct {
	A       Standing
	B       Standing
	Outcome judge.Outcome
}

// Winner returns the overall winner, or false when the battle ended level.
func (r Result) Winner() (Standing, bool) {
	switch r.Outcome {
	case judge.AWins:
		return r.A, true
	case judge.BWins:
		return r.B, true
	default:
		return Standing{}, false
	}
}
