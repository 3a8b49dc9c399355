package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/aethel"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Title    lipgloss.Style
	Persona  lipgloss.Style
	Text     lipgloss.Style
	Selected lipgloss.Style
	UserMsg  lipgloss.Style
	Quote    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Panel    lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t aethel.Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(ansiColor(t.Primary)).Bold(true),
		Persona:  lipgloss.NewStyle().Foreground(ansiColor(t.Secondary)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(ansiColor(t.Text)),
		Selected: lipgloss.NewStyle().Foreground(ansiColor(t.Primary)).Bold(true),
		UserMsg:  lipgloss.NewStyle().Foreground(ansiColor(t.UserMsg)).Bold(true),
		Quote:    lipgloss.NewStyle().Foreground(ansiColor(t.Secondary)).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:  lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:    lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ansiColor(t.Border)).
			Padding(0, 1),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
