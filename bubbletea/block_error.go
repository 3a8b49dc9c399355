package bubbletea

import "github.com/charmbracelet/lipgloss"

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock renders a failed reply the way it is stored in the
// transcript: "Error: " followed by the message.
type ErrorBlock struct {
	message string
	styles  Styles
}

// NewErrorBlock creates an ErrorBlock for message.
func NewErrorBlock(message string, styles Styles) *ErrorBlock {
	return &ErrorBlock{message: sanitize(message), styles: styles}
}

func (b *ErrorBlock) View(width int) string {
	return lipgloss.NewStyle().Width(width).Render(b.styles.Error.Render("Error: " + b.message))
}
