package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor   = lipgloss.Color("#A78BFA") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	mutedColor     = lipgloss.Color("#9CA3AF") // Gray
	accentColor    = lipgloss.Color("#F472B6") // Pink
)

// Styles holds the lipgloss styles used by the text reporter, bound to one
// renderer so colors follow the destination writer's capabilities.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Round     lipgloss.Style
	Speaker   lipgloss.Style
	Verse     lipgloss.Style
	Winner    lipgloss.Style
	Tie       lipgloss.Style
	Score     lipgloss.Style
	Muted     lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles builds styles for output written to w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:     r.NewStyle().Bold(true).Foreground(primaryColor),
		Subtitle:  r.NewStyle().Foreground(mutedColor).Italic(true),
		Round:     r.NewStyle().Bold(true).Foreground(warningColor),
		Speaker:   r.NewStyle().Bold(true).Foreground(accentColor),
		Verse:     r.NewStyle().Italic(true),
		Winner:    r.NewStyle().Bold(true).Foreground(secondaryColor),
		Tie:       r.NewStyle().Bold(true).Foreground(warningColor),
		Score:     r.NewStyle().Bold(true),
		Muted:     r.NewStyle().Foreground(mutedColor),
		Separator: r.NewStyle().Foreground(mutedColor),
	}
}
