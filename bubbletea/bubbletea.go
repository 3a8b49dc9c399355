// Package bubbletea provides the Bubble Tea TUI for the persona suite: a
// dashboard of features, a chat screen with streamed replies, a
// single-shot screen and a settings panel.
package bubbletea

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/aethel"
)

// Config holds the collaborators of the TUI.
type Config struct {
	Catalog   *aethel.Catalog
	Registry  *aethel.Registry
	Generator aethel.Generator
	// Store persists theme and settings changes. Nil disables saving.
	Store aethel.PreferenceStore
	// OutputDir receives generated images and audio.
	OutputDir string
	Logger    *slog.Logger
	// Now stamps saved files. Defaults to time.Now.
	Now func() time.Time
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// FragmentMsg delivers one streamed chat fragment to the model.
type FragmentMsg struct {
	Text string
}

// ReplyDoneMsg signals that a chat reply has finished streaming.
type ReplyDoneMsg struct {
	Err error
}

// SingleShotDoneMsg carries a finished single-shot result and the files
// written for it.
type SingleShotDoneMsg struct {
	State aethel.SingleShotState
	Paths []string
}

// PreferencesSavedMsg reports the outcome of persisting preferences.
type PreferencesSavedMsg struct {
	Err error
}
