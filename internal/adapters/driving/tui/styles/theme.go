// Package styles provides the colour theme and lipgloss styles of the
// results browser.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accepted  lipgloss.Color
	Rejected  lipgloss.Color
	Border    lipgloss.Color
}

// DefaultTheme returns the default palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#06B6D4"),
		Text:      lipgloss.Color("#CDD6F4"),
		Muted:     lipgloss.Color("#6C7086"),
		Accepted:  lipgloss.Color("#A6E3A1"),
		Rejected:  lipgloss.Color("#F38BA8"),
		Border:    lipgloss.Color("#45475A"),
	}
}

// Styles holds the rendered styles for one theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Accepted lipgloss.Style
	Rejected lipgloss.Style
	Error    lipgloss.Style
	Field    lipgloss.Style
	Filter   lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds styles from theme. A nil theme uses the default.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),
		Normal: lipgloss.NewStyle().
			Foreground(theme.Text),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text).
			Background(theme.Primary),
		Accepted: lipgloss.NewStyle().
			Foreground(theme.Accepted),
		Rejected: lipgloss.NewStyle().
			Foreground(theme.Rejected),
		Error: lipgloss.NewStyle().
			Foreground(theme.Rejected),
		Field: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),
		Filter: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Status renders an accepted/rejected label.
func (s *Styles) Status(accepted bool) string {
	if accepted {
		return s.Accepted.Render("ACCEPTED")
	}
	return s.Rejected.Render("REJECTED")
}
