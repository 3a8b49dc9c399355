package bubbletea

import (
	"strings"

	"github.com/fwojciec/aethel"
)

// MessageBlock is a renderable element of the interaction view. View takes
// a width so the root model controls layout and blocks are testable in
// isolation.
type MessageBlock interface {
	View(width int) string
}

// blocksFromTranscript rebuilds the chat view from a transcript. Failed
// messages render as errors.
func blocksFromTranscript(t aethel.Transcript, theme aethel.Theme, styles Styles) []MessageBlock {
	blocks := make([]MessageBlock, 0, len(t))
	for _, msg := range t {
		switch {
		case msg.Role == aethel.RoleUser:
			blocks = append(blocks, NewUserMessageBlock(msg.Content, styles))
		case msg.Failed:
			blocks = append(blocks, NewErrorBlock(strings.TrimPrefix(msg.Content, aethel.ErrorPrefix), styles))
		default:
			b := NewAssistantTextBlock(theme)
			b.Append(msg.Content)
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// renderBlocks joins block views with a blank line between them.
func renderBlocks(blocks []MessageBlock, width int) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(width))
	}
	return b.String()
}
