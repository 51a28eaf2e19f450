package event

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Iron-Ham/rapbattle/internal/logging"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus(nil)

	called := false
	id := bus.Subscribe(TypeRoundCompleted, func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("SubscriptionCount() = %d, want 1", bus.SubscriptionCount())
	}
	if called {
		t.Error("Handler should not be called until an event is published")
	}
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus(nil)

	var received Event
	bus.Subscribe(TypeBattleStarted, func(e Event) {
		received = e
	})

	bus.Publish(NewBattleStartedEvent("b-1", "MC Flow", "Lyric Ace", 3))

	if received == nil {
		t.Fatal("Handler should have received the event")
	}
	started, ok := received.(BattleStartedEvent)
	if !ok {
		t.Fatalf("received %T, want BattleStartedEvent", received)
	}
	if started.Challenger != "MC Flow" || started.Opponent != "Lyric Ace" || started.Rounds != 3 {
		t.Errorf("event = %+v", started)
	}
	if started.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
}

func TestBus_PublishOrder(t *testing.T) {
	bus := NewBus(nil)

	var order []string
	bus.SubscribeAll(func(e Event) { order = append(order, "wildcard") })
	bus.Subscribe(TypeBattleFinished, func(e Event) { order = append(order, "first") })
	bus.Subscribe(TypeBattleFinished, func(e Event) { order = append(order, "second") })
	bus.Subscribe(TypeBattleStarted, func(e Event) { order = append(order, "other") })

	bus.Publish(NewBattleFinishedEvent("b-1", "", 1, 1))

	want := []string{"first", "second", "wildcard"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)

	calls := 0
	id := bus.Subscribe(TypeRoundCompleted, func(e Event) { calls++ })
	keep := bus.Subscribe(TypeRoundCompleted, func(e Event) { calls += 10 })

	if !bus.Unsubscribe(id) {
		t.Fatal("Unsubscribe() = false, want true")
	}
	if bus.Unsubscribe(id) {
		t.Error("second Unsubscribe() = true, want false")
	}

	bus.Publish(NewRoundCompletedEvent("b-1", 1, "x", "yy", 6, 5, "a_wins", 1, 0))
	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("SubscriptionCount() = %d, want 1", bus.SubscriptionCount())
	}
	bus.Unsubscribe(keep)
}

func TestBus_PanickingHandlerIsLogged(t *testing.T) {
	var buf bytes.Buffer
	bus := NewBus(logging.NewWriterLogger(&buf, logging.LevelError))

	reached := false
	bus.Subscribe(TypeBattleStarted, func(e Event) { panic("boom") })
	bus.Subscribe(TypeBattleStarted, func(e Event) { reached = true })

	bus.Publish(NewBattleStartedEvent("b-1", "A", "B", 1))

	if !reached {
		t.Error("handler after a panicking handler was not called")
	}
	if !strings.Contains(buf.String(), "event handler panicked") {
		t.Errorf("panic not logged, log = %q", buf.String())
	}
}

func TestBattleFinishedEvent_Tie(t *testing.T) {
	if !NewBattleFinishedEvent("b", "", 0, 0).Tie() {
		t.Error("Tie() = false for empty winner")
	}
	if NewBattleFinishedEvent("b", "MC Flow", 2, 1).Tie() {
		t.Error("Tie() = true for named winner")
	}
}
