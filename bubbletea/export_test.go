package bubbletea

import (
	"time"

	"github.com/fwojciec/aethel"
)

// RenderContent exports the interaction view rendering for testing.
func RenderContent(m Model) string {
	return renderBlocks(m.blocks, m.Viewport.Width)
}

// Cursor returns the dashboard selection.
func Cursor(m Model) int { return m.cursor }

// PanelOpen reports whether the settings panel is shown.
func PanelOpen(m Model) bool { return m.panelOpen }

// ConfirmingClear reports whether the panel awaits clear confirmation.
func ConfirmingClear(m Model) bool { return m.confirmClear }

// Notice returns the transient status message.
func Notice(m Model) string { return m.notice }

// Paths returns the files written for the last single-shot result.
func Paths(m Model) []string { return m.paths }

// RenderDashboard exports renderDashboard for testing.
func RenderDashboard(features []aethel.Feature, cursor, width int, styles Styles) string {
	return renderDashboard(features, cursor, width, styles)
}

// RenderPanel exports renderPanel for testing.
func RenderPanel(prefs aethel.Preferences, row int, confirm bool, styles Styles) string {
	return renderPanel(prefs, panelRow(row), confirm, styles)
}

// SaveImages exports artifactWriter.saveImages for testing.
func SaveImages(dir string, now func() time.Time, featureID string, images []aethel.Image) ([]string, error) {
	return artifactWriter{dir: dir, now: now}.saveImages(featureID, images)
}

// SaveAudio exports artifactWriter.saveAudio for testing.
func SaveAudio(dir string, now func() time.Time, featureID string, pcm []byte) (string, error) {
	return artifactWriter{dir: dir, now: now}.saveAudio(featureID, pcm)
}

// HasUnclosedFence exports hasUnclosedFence for testing.
func HasUnclosedFence(s string) bool { return hasUnclosedFence(s) }

// Sanitize exports sanitize for testing.
func Sanitize(s string) string { return sanitize(s) }

// BlocksFromTranscript exports blocksFromTranscript for testing.
func BlocksFromTranscript(t aethel.Transcript, theme aethel.Theme) []MessageBlock {
	return blocksFromTranscript(t, theme, NewStyles(theme))
}
