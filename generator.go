package aethel

import "context"

// Image is one generated picture.
type Image struct {
	Data     []byte
	MIMEType string
}

// TextResult is the outcome of a single-shot text generation. Err is set
// instead of Text when the call fails.
type TextResult struct {
	Text string
	Err  error
}

// ImageResult is the outcome of an image generation.
type ImageResult struct {
	Images []Image
	Err    error
}

// AudioResult is the outcome of an audio generation. Audio holds raw
// little-endian 16-bit mono PCM at PCMSampleRate. Description is the
// caption produced by the first stage.
type AudioResult struct {
	Audio       []byte
	Description string
	Err         error
}

// Generator produces single-shot results. Each operation reports failure
// through the result's Err field rather than a separate error return.
type Generator interface {
	GenerateText(ctx context.Context, prompt, model, instruction string, s Settings) TextResult
	GenerateImages(ctx context.Context, prompt string, s Settings) ImageResult
	GenerateAudio(ctx context.Context, prompt, instruction string, s Settings) AudioResult
}

// Reporter forwards failures to an external error tracker.
type Reporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
}

// NopReporter discards every report.
type NopReporter struct{}

// Report does nothing.
func (NopReporter) Report(context.Context, error, map[string]string) {}

// Interface compliance check.
var _ Reporter = NopReporter{}
