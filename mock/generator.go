package mock

import (
	"context"

	"github.com/fwojciec/aethel"
)

// Interface compliance checks.
var (
	_ aethel.Generator       = (*Generator)(nil)
	_ aethel.Reporter        = (*Reporter)(nil)
	_ aethel.PreferenceStore = (*PreferenceStore)(nil)
)

// Generator is a test double for aethel.Generator.
// Set the function fields for the methods you need.
type Generator struct {
	GenerateTextFn   func(ctx context.Context, prompt, model, instruction string, s aethel.Settings) aethel.TextResult
	GenerateImagesFn func(ctx context.Context, prompt string, s aethel.Settings) aethel.ImageResult
	GenerateAudioFn  func(ctx context.Context, prompt, instruction string, s aethel.Settings) aethel.AudioResult
}

// GenerateText delegates to GenerateTextFn.
func (g *Generator) GenerateText(ctx context.Context, prompt, model, instruction string, s aethel.Settings) aethel.TextResult {
	return g.GenerateTextFn(ctx, prompt, model, instruction, s)
}

// GenerateImages delegates to GenerateImagesFn.
func (g *Generator) GenerateImages(ctx context.Context, prompt string, s aethel.Settings) aethel.ImageResult {
	return g.GenerateImagesFn(ctx, prompt, s)
}

// GenerateAudio delegates to GenerateAudioFn.
func (g *Generator) GenerateAudio(ctx context.Context, prompt, instruction string, s aethel.Settings) aethel.AudioResult {
	return g.GenerateAudioFn(ctx, prompt, instruction, s)
}

// Reporter is a test double for aethel.Reporter. ReportFn is nil-safe.
type Reporter struct {
	ReportFn func(ctx context.Context, err error, tags map[string]string)
}

// Report delegates to ReportFn when set.
func (r *Reporter) Report(ctx context.Context, err error, tags map[string]string) {
	if r.ReportFn != nil {
		r.ReportFn(ctx, err, tags)
	}
}

// PreferenceStore is a test double for aethel.PreferenceStore.
type PreferenceStore struct {
	LoadFn func() (aethel.Preferences, error)
	SaveFn func(p aethel.Preferences) error
}

// Load delegates to LoadFn.
func (s *PreferenceStore) Load() (aethel.Preferences, error) {
	return s.LoadFn()
}

// Save delegates to SaveFn.
func (s *PreferenceStore) Save(p aethel.Preferences) error {
	return s.SaveFn(p)
}
