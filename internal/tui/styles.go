// Package tui provides the interactive terminal portfolio.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/krisnawm/folio/internal/tui/theme"
)

// Styles holds every style the page uses, derived from one palette.
type Styles struct {
	Palette theme.Palette

	Title        lipgloss.Style
	Quote        lipgloss.Style
	SectionTitle lipgloss.Style
	Body         lipgloss.Style
	Label        lipgloss.Style
	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	Link         lipgloss.Style
	LinkSelected lipgloss.Style
	URL          lipgloss.Style
	Divider      lipgloss.Style
	Footer       lipgloss.Style

	// Status line
	Status  lipgloss.Style
	Copied  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	HelpBox lipgloss.Style
}

// NewStyles builds the styles for palette p.
func NewStyles(p theme.Palette) Styles {
	text := theme.Color(p.Text)
	sub := theme.Color(p.SubText)
	accent := theme.Color(p.Accent)
	secondary := theme.Color(p.Secondary)
	muted := theme.Color(p.Muted)
	border := theme.Color(p.Border)

	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Quote: lipgloss.NewStyle().
			Foreground(sub).
			Italic(true).
			Align(lipgloss.Center),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(sub),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Link: lipgloss.NewStyle().
			Foreground(secondary).
			Padding(0, 1),

		LinkSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Underline(true).
			Padding(0, 1),

		URL: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Divider: lipgloss.NewStyle().
			Foreground(border),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Align(lipgloss.Center),

		Status: lipgloss.NewStyle().
			Foreground(muted),

		Copied: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(muted),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(1, 2),
	}
}
