package bubbletea

import (
	"strings"

	"github.com/fwojciec/aethel"
	"github.com/fwojciec/aethel/goldmark"
)

var _ MessageBlock = (*AssistantTextBlock)(nil)

// AssistantTextBlock renders model text as markdown. Fragments are
// appended as they stream in; the last render is cached until the content
// or the width changes.
type AssistantTextBlock struct {
	content strings.Builder
	theme   aethel.Theme

	cachedWidth int
	cachedLen   int
	cached      string
}

// NewAssistantTextBlock creates an empty block.
func NewAssistantTextBlock(theme aethel.Theme) *AssistantTextBlock {
	return &AssistantTextBlock{theme: theme, cachedLen: -1}
}

// Append adds a streamed fragment. Terminal control sequences in the
// fragment are removed.
func (b *AssistantTextBlock) Append(text string) {
	b.content.WriteString(sanitize(text))
}

// Text returns the raw markdown received so far.
func (b *AssistantTextBlock) Text() string {
	return b.content.String()
}

func (b *AssistantTextBlock) View(width int) string {
	if width == b.cachedWidth && b.content.Len() == b.cachedLen {
		return b.cached
	}
	src := b.content.String()
	if hasUnclosedFence(src) {
		// A reply cut mid code block still renders as code.
		src += "\n```"
	}
	b.cached = strings.TrimRight(goldmark.Render(src, width, b.theme), "\n")
	b.cachedWidth = width
	b.cachedLen = b.content.Len()
	return b.cached
}

// hasUnclosedFence reports an odd number of "```" markers. Triple
// backticks inside inline code spans are miscounted.
func hasUnclosedFence(s string) bool {
	return strings.Count(s, "```")%2 == 1
}
