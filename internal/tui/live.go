// Package tui shows a battle as a live terminal view built on bubbletea.
//
// The view drives the battle one round per pace tick and renders whatever
// the battle publishes on the event bus. Pressing space plays the next
// round immediately; q finishes the remaining rounds at once and exits.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/rapbattle/internal/battle"
	"github.com/Iron-Ham/rapbattle/internal/event"
	"github.com/Iron-Ham/rapbattle/internal/judge"
	"github.com/Iron-Ham/rapbattle/internal/report"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Stepper is the part of a battle the live view drives.
type Stepper interface {
	Step() (battle.RoundResult, error)
	Run() battle.Result
	Status() battle.Status
}

// roundMsg asks the model to play the next round.
type roundMsg struct{}

// Model is the bubbletea model for a live battle.
type Model struct {
	stepper  Stepper
	bus      *event.Bus
	subID    string
	feed     *feed
	spinner  spinner.Model
	styles   report.Styles
	pace     time.Duration
	finished bool
}

// New creates a live view for stepper. It subscribes to bus immediately so
// no event published after New is missed; call Close when done.
func New(stepper Stepper, bus *event.Bus, styles report.Styles, pace time.Duration) Model {
	f := &feed{styles: styles}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Round

	return Model{
		stepper: stepper,
		bus:     bus,
		subID:   bus.SubscribeAll(f.handle),
		feed:    f,
		spinner: s,
		styles:  styles,
		pace:    pace,
	}
}

// Close detaches the view from the event bus.
func (m Model) Close() {
	m.bus.Unsubscribe(m.subID)
}

// Finished reports whether the battle has reached its final state.
func (m Model) Finished() bool {
	return m.finished
}

// Init starts the spinner and schedules the first round.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, nextRound(m.pace))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.stepper.Status() != battle.StatusFinished {
				m.stepper.Run()
			}
			m.finished = true
			return m, tea.Quit
		case " ", "enter":
			m.step()
			if m.finished {
				return m, tea.Quit
			}
		}
		return m, nil

	case roundMsg:
		if m.finished {
			return m, nil
		}
		m.step()
		if m.finished {
			return m, tea.Quit
		}
		return m, nextRound(m.pace)

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) step() {
	if m.stepper.Status() != battle.StatusFinished {
		// Step only fails on a finished battle, checked above.
		_, _ = m.stepper.Step()
	}
	m.finished = m.stepper.Status() == battle.StatusFinished
}

// View renders the transcript so far.
func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.feed.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if !m.finished {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.styles.Muted.Render("next round coming up  •  space: skip wait  •  q: finish"))
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts a bubbletea program for m and blocks until it exits.
func Run(m Model, opts ...tea.ProgramOption) error {
	defer m.Close()
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// nextRound returns a command that sends a roundMsg after pace.
func nextRound(pace time.Duration) tea.Cmd {
	if pace <= 0 {
		return func() tea.Msg { return roundMsg{} }
	}
	return tea.Tick(pace, func(time.Time) tea.Msg {
		return roundMsg{}
	})
}

// feed turns battle events into styled transcript lines.
type feed struct {
	styles report.Styles
	a, b   string
	lines  []string
}

func (f *feed) handle(e event.Event) {
	switch ev := e.(type) {
	case event.BattleStartedEvent:
		f.a, f.b = ev.Challenger, ev.Opponent
		f.add(f.styles.Title.Render(fmt.Sprintf("🎤 %s vs %s 🎤", ev.Challenger, ev.Opponent)))
		f.add(f.styles.Subtitle.Render(fmt.Sprintf("%d rounds", ev.Rounds)))
		f.add("")

	case event.RoundCompletedEvent:
		f.add(f.styles.Round.Render(fmt.Sprintf("🔥 ROUND %d 🔥", ev.Round)))
		f.add(fmt.Sprintf("%s: %s %s", f.styles.Speaker.Render(f.a), f.styles.Verse.Render(`"`+ev.LineA+`"`), f.styles.Muted.Render(fmt.Sprintf("[%d]", ev.ScoreA))))
		f.add(fmt.Sprintf("%s: %s %s", f.styles.Speaker.Render(f.b), f.styles.Verse.Render(`"`+ev.LineB+`"`), f.styles.Muted.Render(fmt.Sprintf("[%d]", ev.ScoreB))))
		switch ev.Outcome {
		case string(judge.AWins):
			f.add(f.styles.Winner.Render(fmt.Sprintf("🏆 %s takes it", f.a)))
		case string(judge.BWins):
			f.add(f.styles.Winner.Render(fmt.Sprintf("🏆 %s takes it", f.b)))
		default:
			f.add(f.styles.Tie.Render("🤝 tie"))
		}
		f.add(fmt.Sprintf("Score: %s %d - %d %s", f.a, ev.TallyA, ev.TallyB, f.b))
		f.add("")

	case event.BattleFinishedEvent:
		f.add(f.styles.Title.Render("🏁 FINAL RESULTS 🏁"))
		f.add(fmt.Sprintf("%s: %d points", f.a, ev.ScoreA))
		f.add(fmt.Sprintf("%s: %d points", f.b, ev.ScoreB))
		if ev.Tie() {
			f.add(f.styles.Tie.Render("🤝 IT'S A TIE! 🤝"))
		} else {
			f.add(f.styles.Winner.Render(fmt.Sprintf("🎉 WINNER: %s! 🎉", ev.Winner)))
		}
	}
}

func (f *feed) add(line string) {
	f.lines = append(f.lines, line)
}
