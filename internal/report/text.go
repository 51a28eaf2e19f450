// Package report renders a battle for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Iron-Ham/rapbattle/internal/battle"
	"github.com/Iron-Ham/rapbattle/internal/judge"
	"github.com/Iron-Ham/rapbattle/internal/roster"
	"github.com/mattn/go-runewidth"
)

const (
	arenaTitle     = "RAP BATTLE ARENA"
	bannerRepeat   = 30
	separatorWidth = 60
)

// Text is a battle.Reporter that prints a styled transcript, optionally
// pausing between beats for dramatic effect. Pauses never affect outcomes.
type Text struct {
	w     io.Writer
	st    Styles
	pace  time.Duration
	sleep func(time.Duration)

	linesThisRound int
}

// NewText creates a reporter writing to w. A zero pace disables pauses.
func NewText(w io.Writer, pace time.Duration) *Text {
	return &Text{
		w:     w,
		st:    NewStyles(w),
		pace:  pace,
		sleep: time.Sleep,
	}
}

// Banner prints the arena header.
func (t *Text) Banner() {
	row := strings.Repeat("🎤", bannerRepeat)
	pad := (runewidth.StringWidth(row) - runewidth.StringWidth(arenaTitle)) / 2
	if pad < 0 {
		pad = 0
	}

	t.println()
	t.println(row)
	t.println(strings.Repeat(" ", pad) + t.st.Title.Render(arenaTitle))
	t.println(row)
	t.println()
}

// Roster lists the available competitors.
func (t *Text) Roster(r roster.Roster) {
	t.println(t.st.Title.Render("Available Rappers:"))
	for i, c := range r {
		t.println(fmt.Sprintf("%d. %s %s", i+1, c.Name(), t.st.Muted.Render("("+c.Style()+")")))
	}
	t.println()
}

// Starting announces that a random matchup is being drawn.
func (t *Text) Starting() {
	t.println("Starting a random battle...")
	t.println()
	t.pause(1)
}

// Seed prints how to replay the battle.
func (t *Text) Seed(seed int64) {
	t.println(t.st.Muted.Render(fmt.Sprintf("Replay this battle with --seed %d", seed)))
}

// BattleStart implements battle.Reporter.
func (t *Text) BattleStart(_ string, a, b battle.Standing, _ int) {
	t.println()
	t.println(t.st.Title.Render(fmt.Sprintf("🎤 RAP BATTLE: %s vs %s 🎤", a.Name, b.Name)))
	t.println(t.st.Subtitle.Render(fmt.Sprintf("Style: %s vs %s", a.Style, b.Style)))
	t.separator()
}

// RoundStart implements battle.Reporter.
func (t *Text) RoundStart(round int) {
	t.linesThisRound = 0
	t.println(t.st.Round.Render(fmt.Sprintf("🔥 ROUND %d 🔥", round)))
	t.println()
}

// Line implements battle.Reporter.
func (t *Text) Line(_ int, who battle.Standing, line string) {
	verb := "responds"
	if t.linesThisRound == 0 {
		verb = "steps up"
	}
	t.linesThisRound++
	t.println(fmt.Sprintf("🎵 %s %s:", t.st.Speaker.Render(who.Name), verb))
	t.pause(1)
	t.println(t.st.Verse.Render(`"` + line + `"`))
	t.pause(1.5)
	t.separator()
}

// RoundResult implements battle.Reporter.
func (t *Text) RoundResult(res battle.RoundResult) {
	switch res.Outcome {
	case judge.AWins:
		t.println(t.st.Winner.Render(fmt.Sprintf("🏆 %s wins this round!", res.A.Name)))
	case judge.BWins:
		t.println(t.st.Winner.Render(fmt.Sprintf("🏆 %s wins this round!", res.B.Name)))
	default:
		t.println(t.st.Tie.Render("🤝 It's a tie!"))
	}
	t.println(t.st.Muted.Render(fmt.Sprintf("Judges: %d vs %d", res.ScoreA, res.ScoreB)))
	t.println()
	t.println(fmt.Sprintf("Score: %s %s - %s %s",
		res.A.Name, t.st.Score.Render(fmt.Sprint(res.A.Score)),
		t.st.Score.Render(fmt.Sprint(res.B.Score)), res.B.Name))
	t.separator()
	t.pause(1)
}

// FinalResult implements battle.Reporter.
func (t *Text) FinalResult(res battle.Result) {
	confetti := strings.Repeat("🎊", bannerRepeat)

	t.println()
	t.println(confetti)
	t.println()
	t.println(t.st.Title.Render("🏁 FINAL RESULTS 🏁"))
	t.println()
	t.println(fmt.Sprintf("%s: %d points", res.A.Name, res.A.Score))
	t.println(fmt.Sprintf("%s: %d points", res.B.Name, res.B.Score))
	t.println()

	if w, ok := res.Winner(); ok {
		t.println(t.st.Winner.Render(fmt.Sprintf("🎉 WINNER: %s! 🎉", w.Name)))
	} else {
		t.println(t.st.Tie.Render("🤝 IT'S A TIE! Both rappers killed it! 🤝"))
	}

	t.println()
	t.println(confetti)
	t.println()
}

func (t *Text) separator() {
	t.println()
	t.println(t.st.Separator.Render(strings.Repeat("=", separatorWidth)))
	t.println()
}

// pause sleeps for factor beats of the configured pace.
func (t *Text) pause(factor float64) {
	if t.pace <= 0 {
		return
	}
	t.sleep(time.Duration(float64(t.pace) * factor))
}

func (t *Text) println(s ...string) {
	_, _ = fmt.Fprintln(t.w, strings.Join(s, ""))
}
