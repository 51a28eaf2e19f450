// Package judge scores the two lines of a round.
//
// A line scores its length in characters plus a random bonus between
// MinBonus and MaxBonus. The bonus is about as large as the typical length
// difference between two lines, so longer lines win more often but not
// always.
package judge

import (
	"unicode/utf8"

	"github.com/Iron-Ham/rapbattle/internal/random"
)

// Bonus bounds, inclusive.
const (
	MinBonus = 1
	MaxBonus = 10
)

// Outcome is the result of comparing two scores.
type Outcome string

const (
	// AWins means the first competitor scored strictly higher.
	AWins Outcome = "a_wins"
	// BWins means the second competitor scored strictly higher.
	BWins Outcome = "b_wins"
	// Tie means both scores were equal. Nobody is credited.
	Tie Outcome = "tie"
)

// Verdict is the judged outcome of one exchange of lines.
type Verdict struct {
	LineA   string
	LineB   string
	ScoreA  int
	ScoreB  int
	Outcome Outcome
}

// Judge scores lines using an injected random source.
type Judge struct {
	src random.Source
}

// New creates a Judge drawing bonuses from src.
func New(src random.Source) *Judge {
	return &Judge{src: src}
}

// Score returns the character count of line plus a fresh bonus draw.
func (j *Judge) Score(line string) int {
	return utf8.RuneCountInString(line) + random.Between(j.src, MinBonus, MaxBonus)
}

// Decide scores lineA, then lineB, and compares the results.
func (j *Judge) Decide(lineA, lineB string) Verdict {
	scoreA := j.Score(lineA)
	scoreB := j.Score(lineB)
	return Verdict{
		LineA:   lineA,
		LineB:   lineB,
		ScoreA:  scoreA,
		ScoreB:  scoreB,
		Outcome: Compare(scoreA, scoreB),
	}
}

// Compare maps two scores onto an Outcome. Equal scores are a tie; there is
// no tie-break.
func Compare(scoreA, scoreB int) Outcome {
	switch {
	case scoreA > scoreB:
		return AWins
	case scoreB > scoreA:
		return BWins
	default:
		return Tie
	}
}
