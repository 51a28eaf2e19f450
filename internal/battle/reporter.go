package battle

import (
	"github.com/Iron-Ham/rapbattle/internal/event"
)

// Reporter receives a battle's progress. Implementations must not call back
// into the battle.
type Reporter interface {
	// BattleStart is called once, before the first round.
	BattleStart(id string, a, b Standing, rounds int)
	// RoundStart is called at the start of each round, numbered from 1.
	RoundStart(round int)
	// Line is called when a competitor drops a line.
	Line(round int, who Standing, line string)
	// RoundResult is called after a round is judged and credited.
	RoundResult(res RoundResult)
	// FinalResult is called once, after the last round.
	FinalResult(res Result)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) BattleStart(string, Standing, Standing, int) {}
func (NopReporter) RoundStart(int)                              {}
func (NopReporter) Line(int, Standing, string)                  {}
func (NopReporter) RoundResult(RoundResult)                     {}
func (NopReporter) FinalResult(Result)                          {}

// MultiReporter fans progress out to several reporters in order.
type MultiReporter []Reporter

func (m MultiReporter) BattleStart(id string, a, b Standing, rounds int) {
	for _, r := range m {
		r.BattleStart(id, a, b, rounds)
	}
}

func (m MultiReporter) RoundStart(round int) {
	for _, r := range m {
		r.RoundStart(round)
	}
}

func (m MultiReporter) Line(round int, who Standing, line string) {
	for _, r := range m {
		r.Line(round, who, line)
	}
}

func (m MultiReporter) RoundResult(res RoundResult) {
	for _, r := range m {
		r.RoundResult(res)
	}
}

func (m MultiReporter) FinalResult(res Result) {
	for _, r := range m {
		r.FinalResult(res)
	}
}

// BusReporter publishes battle progress as events.
type BusReporter struct {
	bus *event.Bus
	id  string
}

// NewBusReporter creates a reporter that publishes to bus.
func NewBusReporter(bus *event.Bus) *BusReporter {
	return &BusReporter{bus: bus}
}

// BattleStart publishes a BattleStartedEvent.
func (r *BusReporter) BattleStart(id string, a, b Standing, rounds int) {
	r.id = id
	r.bus.Publish(event.NewBattleStartedEvent(id, a.Name, b.Name, rounds))
}

// RoundStart is not published; RoundCompletedEvent carries the round number.
func (r *BusReporter) RoundStart(int) {}

// Line is not published; RoundCompletedEvent carries both lines.
func (r *BusReporter) Line(int, Standing, string) {}

// RoundResult publishes a RoundCompletedEvent.
func (r *BusReporter) RoundResult(res RoundResult) {
	r.bus.Publish(event.NewRoundCompletedEvent(r.id, res.Round,
		res.LineA, res.LineB, res.ScoreA, res.ScoreB, string(res.Outcome),
		res.A.Score, res.B.Score))
}

// FinalResult publishes a BattleFinishedEvent.
func (r *BusReporter) FinalResult(res Result) {
	winner := ""
	if w, ok := res.Winner(); ok {
		winner = w.Name
	}
	r.bus.Publish(event.NewBattleFinishedEvent(r.id, winner, res.A.Score, res.B.Score))
}
