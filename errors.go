package aethel

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates settings or catalog data failed validation.
	ErrValidation = errors.New("validation error")

	// ErrFeatureNotFound indicates the requested feature ID is not in the catalog.
	ErrFeatureNotFound = errors.New("feature not found")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")

	// ErrNoDescription indicates the first audio stage returned no text.
	ErrNoDescription = errors.New("could not generate audio description")

	// ErrNoAudioData indicates the speech stage returned no inline audio.
	ErrNoAudioData = errors.New("failed to generate audio data")
)
