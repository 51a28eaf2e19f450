// Package roster defines competitors, the built-in roster and the draw that
// picks two of them for a battle.
package roster

import (
	"fmt"

	"github.com/Iron-Ham/rapbattle/internal/random"
)

// Competitor is a rapper with a fixed set of lines and a running score.
// Lines never change after construction; the score starts at zero and only
// grows through Award.
type Competitor struct {
	name  string
	style string
	lines []string
	score int
}

// NewCompetitor creates a competitor. The lines slice is copied.
func NewCompetitor(name, style string, lines []string) *Competitor {
	return &Competitor{
		name:  name,
		style: style,
		lines: append([]string(nil), lines...),
	}
}

// Name returns the display name.
func (c *Competitor) Name() string { return c.name }

// Style returns the style label.
func (c *Competitor) Style() string { return c.style }

// Score returns the number of rounds won so far.
func (c *Competitor) Score() int { return c.score }

// LineCount returns how many candidate lines the competitor has.
func (c *Competitor) LineCount() int { return len(c.lines) }

// Lines returns a copy of the candidate lines.
func (c *Competitor) Lines() []string {
	return append([]string(nil), c.lines...)
}

// Award credits the competitor with one round win.
func (c *Competitor) Award() {
	c.score++
}

// Line draws one of the competitor's lines uniformly at random. Draws are
// with replacement, so the same line may come up in consecutive rounds.
// It panics if the competitor has no lines; Validate rejects such rosters.
func (c *Competitor) Line(src random.Source) string {
	return c.lines[src.IntN(len(c.lines))]
}

// String formats the competitor as "Name (Style)".
func (c *Competitor) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.style)
}
