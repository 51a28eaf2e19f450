package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier, "category.action".
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeBattleStarted  = "battle.started"
	TypeRoundCompleted = "round.completed"
	TypeBattleFinished = "battle.finished"
)

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// BattleStartedEvent is emitted when the first round of a battle begins.
type BattleStartedEvent struct {
	baseEvent
	BattleID   string
	Challenger string
	Opponent   string
	Rounds     int
}

// NewBattleStartedEvent creates a BattleStartedEvent.
func NewBattleStartedEvent(battleID, challenger, opponent string, rounds int) BattleStartedEvent {
	return BattleStartedEvent{
		baseEvent:  newBaseEvent(TypeBattleStarted),
		BattleID:   battleID,
		Challenger: challenger,
		Opponent:   opponent,
		Rounds:     rounds,
	}
}

// RoundCompletedEvent is emitted after a round has been judged and the
// tallies updated.
type RoundCompletedEvent struct {
	baseEvent
	BattleID string
	Round    int
	LineA    string
	LineB    string
	ScoreA   int
	ScoreB   int
	Outcome  string
	TallyA   int
	TallyB   int
}

// NewRoundCompletedEvent creates a RoundCompletedEvent.
func NewRoundCompletedEvent(battleID string, round int, lineA, lineB string, scoreA, scoreB int, outcome string, tallyA, tallyB int) RoundCompletedEvent {
	return RoundCompletedEvent{
		baseEvent: newBaseEvent(TypeRoundCompleted),
		BattleID:  battleID,
		Round:     round,
		LineA:     lineA,
		LineB:     lineB,
		ScoreA:    scoreA,
		ScoreB:    scoreB,
		Outcome:   outcome,
		TallyA:    tallyA,
		TallyB:    tallyB,
	}
}

// BattleFinishedEvent is emitted once, after the last round.
// Winner is empty when the battle ends level.
type BattleFinishedEvent struct {
	baseEvent
	BattleID string
	Winner   string
	ScoreA   int
	ScoreB   int
}

// NewBattleFinishedEvent creates a BattleFinishedEvent.
func NewBattleFinishedEvent(battleID, winner string, scoreA, scoreB int) BattleFinishedEvent {
	return BattleFinishedEvent{
		baseEvent: newBaseEvent(TypeBattleFinished),
		BattleID:  battleID,
		Winner:    winner,
		ScoreA:    scoreA,
		ScoreB:    scoreB,
	}
}

// Tie reports whether the battle ended without a winner.
func (e BattleFinishedEvent) Tie() bool {
	return e.Winner == ""
}
