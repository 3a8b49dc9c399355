// Package gemini implements [aethel.Generator] and [aethel.ChatStarter] for
// the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between aethel's
// domain types and the Gemini API types. Chat streaming uses the SDK's
// iter.Seq2 iterator, wrapped into the pull-based [aethel.Stream] interface.
package gemini

// Fixed models and request shapes for the media operations.
const (
	ImageModel       = "imagen-4.0-generate-001"
	ImageCount       = 4
	ImageMIMEType    = "image/png"
	ImageAspectRatio = "1:1"
	ImageStyleSuffix = ", in the style of cosmic voids, bio-luminescent flora, intricate filigree, celestial bodies, and vibrant, psychedelic color palettes"

	DescriptionModel = "gemini-2.5-pro"
	SpeechModel      = "gemini-2.5-flash-preview-tts"
	SpeechVoice      = "Kore"
)
