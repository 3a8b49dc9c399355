package bubbletea

import (
	"strings"

	"github.com/fwojciec/aethel"
	"github.com/mattn/go-runewidth"
)

// cardHeight is the number of lines one feature occupies on the dashboard:
// title, description and a blank separator.
const cardHeight = 3

// featureTag labels what a feature produces.
func featureTag(f aethel.Feature) string {
	if f.IsChat() || f.Kind == aethel.KindText {
		return f.Mode.String()
	}
	return f.Mode.String() + ", " + f.Kind.String()
}

// renderDashboard lists every feature as a two-line card. Descriptions are
// cut to one line of display width.
func renderDashboard(features []aethel.Feature, cursor, width int, styles Styles) string {
	var b strings.Builder
	for i, f := range features {
		if i > 0 {
			b.WriteString("\n\n")
		}
		marker, title := "  ", styles.Persona.Render(f.Title)
		if i == cursor {
			marker, title = styles.Selected.Render("▸ "), styles.Selected.Render(f.Title)
		}
		b.WriteString(marker + title + styles.Muted.Render(" · "+featureTag(f)))
		b.WriteString("\n  ")
		b.WriteString(styles.Muted.Render(runewidth.Truncate(f.Description, max(width-2, 1), "…")))
	}
	return b.String()
}
