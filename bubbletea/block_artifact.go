package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*ArtifactBlock)(nil)

// ArtifactBlock lists media files written for a single-shot result, with
// an optional quoted caption.
type ArtifactBlock struct {
	heading string
	caption string
	paths   []string
	styles  Styles
}

// NewArtifactBlock creates an ArtifactBlock.
func NewArtifactBlock(heading, caption string, paths []string, styles Styles) *ArtifactBlock {
	return &ArtifactBlock{heading: heading, caption: sanitize(caption), paths: paths, styles: styles}
}

func (b *ArtifactBlock) View(width int) string {
	lines := []string{b.styles.Persona.Render(b.heading)}
	if b.caption != "" {
		lines = append(lines, b.styles.Quote.Render(`"`+b.caption+`"`))
	}
	for _, p := range b.paths {
		lines = append(lines, "  "+b.styles.Success.Render(p))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

var _ MessageBlock = (*PlaceholderBlock)(nil)

// PlaceholderBlock is shown before a single-shot feature has a result.
type PlaceholderBlock struct {
	description string
	styles      Styles
}

// NewPlaceholderBlock creates a PlaceholderBlock for a feature description.
func NewPlaceholderBlock(description string, styles Styles) *PlaceholderBlock {
	return &PlaceholderBlock{description: description, styles: styles}
}

func (b *PlaceholderBlock) View(width int) string {
	content := b.styles.Title.Render("Awaiting your command...") + "\n" + b.styles.Muted.Render(b.description)
	return lipgloss.NewStyle().Width(width).Render(content)
}
