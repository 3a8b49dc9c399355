package bubbletea

import (
	"fmt"
	"strings"

	"github.com/fwojciec/aethel"
)

// panelRow is a selectable line of the settings panel.
type panelRow int

const (
	rowLength panelRow = iota
	rowCreativity
	rowAdherence
	rowTheme
	rowClear
	panelRowCount
)

// adherenceStep is how far one keypress moves the adherence slider.
const adherenceStep = 5

// sliderWidth is the number of cells in the adherence bar.
const sliderWidth = 20

func slider(v int) string {
	filled := v * sliderWidth / aethel.AdherenceMax
	return "Loose [" + strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled) + "] Strict"
}

// renderPanel draws the settings panel with the selected row marked.
func renderPanel(prefs aethel.Preferences, row panelRow, confirm bool, styles Styles) string {
	s := prefs.Settings
	rows := []struct {
		label string
		value string
	}{
		rowLength:     {"Response Detail", "◂ " + s.Length.String() + " ▸"},
		rowCreativity: {"AI Temperament", "◂ " + s.Creativity.String() + " ▸"},
		rowAdherence:  {"Persona Adherence", fmt.Sprintf("%s %d%%", slider(s.Adherence), s.Adherence)},
		rowTheme:      {"Theme", prefs.Theme.Label() + " (switch to " + prefs.Theme.Toggle().Label() + ")"},
		rowClear:      {"Clear All Contexts", ""},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Aethel Controls"))
	b.WriteString("\n")
	for i, r := range rows {
		b.WriteString("\n")
		marker, label := "  ", styles.Text.Render(fmt.Sprintf("%-18s", r.label))
		if panelRow(i) == row {
			marker, label = styles.Selected.Render("▸ "), styles.Selected.Render(fmt.Sprintf("%-18s", r.label))
		}
		b.WriteString(marker + label)
		if r.value != "" {
			b.WriteString(" " + r.value)
		}
	}
	b.WriteString("\n\n")
	if confirm {
		b.WriteString(styles.Error.Render("Clear all conversation contexts? This cannot be undone. (y/n)"))
	} else {
		b.WriteString(styles.Muted.Render("↑/↓ select, ←/→ change, Enter apply, Tab close"))
	}
	return styles.Panel.Render(b.String())
}
