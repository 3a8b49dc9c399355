// Package goldmark renders model replies, which are markdown, to
// ANSI-styled terminal output using goldmark for parsing and lipgloss for
// styling. GFM tables and strikethrough are supported because personas
// are instructed to organize answers in tables and lists.
package goldmark

import "github.com/fwojciec/aethel"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs, quotes and list items are word-wrapped to width. Code blocks
// and tables are rendered without reflow.
func Render(source string, width int, theme aethel.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
