package aethel

import "fmt"

// ResponseLength is the response-length tier.
type ResponseLength int

const (
	LengthConcise ResponseLength = iota
	LengthBalanced
	LengthElaborate
)

var lengthNames = [...]string{"Concise", "Balanced", "Elaborate"}

// String returns the display name of the tier.
func (l ResponseLength) String() string {
	if l < LengthConcise || l > LengthElaborate {
		return fmt.Sprintf("ResponseLength(%d)", int(l))
	}
	return lengthNames[l]
}

// Next returns the following tier, wrapping after Elaborate.
func (l ResponseLength) Next() ResponseLength {
	return (l + 1) % ResponseLength(len(lengthNames))
}

// Prev returns the preceding tier, wrapping before Concise.
func (l ResponseLength) Prev() ResponseLength {
	n := ResponseLength(len(lengthNames))
	return (l + n - 1) % n
}

// MaxOutputTokens maps the tier to a maximum output size.
func (l ResponseLength) MaxOutputTokens() int {
	switch l {
	case LengthConcise:
		return 1024
	case LengthElaborate:
		return 8192
	default:
		return 4096
	}
}

// ParseResponseLength parses a tier from its display name.
func ParseResponseLength(s string) (ResponseLength, error) {
	for i, name := range lengthNames {
		if name == s {
			return ResponseLength(i), nil
		}
	}
	return 0, fmt.Errorf("unknown response length %q: %w", s, ErrValidation)
}

// Creativity is the creativity tier.
type Creativity int

const (
	CreativityGrounded Creativity = iota
	CreativityImaginative
	CreativitySurreal
)

var creativityNames = [...]string{"Grounded", "Imaginative", "Surreal"}

// String returns the display name of the tier.
func (c Creativity) String() string {
	if c < CreativityGrounded || c > CreativitySurreal {
		return fmt.Sprintf("Creativity(%d)", int(c))
	}
	return creativityNames[c]
}

// Next returns the following tier, wrapping after Surreal.
func (c Creativity) Next() Creativity {
	return (c + 1) % Creativity(len(creativityNames))
}

// Prev returns the preceding tier, wrapping before Grounded.
func (c Creativity) Prev() Creativity {
	n := Creativity(len(creativityNames))
	return (c + n - 1) % n
}

// Temperature maps the tier to a sampling temperature.
func (c Creativity) Temperature() float64 {
	switch c {
	case CreativityGrounded:
		return 0.2
	case CreativitySurreal:
		return 1.0
	default:
		return 0.7
	}
}

// ParseCreativity parses a tier from its display name.
func ParseCreativity(s string) (Creativity, error) {
	for i, name := range creativityNames {
		if name == s {
			return Creativity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown creativity %q: %w", s, ErrValidation)
}

// Adherence thresholds. Values strictly above AdherenceStrict or strictly
// below AdherenceLoose change the persona instruction.
const (
	AdherenceMin    = 0
	AdherenceMax    = 100
	AdherenceLoose  = 25
	AdherenceStrict = 75
)

// Directives appended to a persona instruction by ApplyAdherence.
const (
	StrictDirective = " CRITICAL: Adhere to this persona with maximum strictness. Do not deviate under any circumstances."
	LooseDirective  = " NOTE: You have creative freedom to interpret this persona loosely."
)

// Settings are the user-tunable generation settings.
type Settings struct {
	Length     ResponseLength
	Creativity Creativity
	Adherence  int // percentage, 0-100
}

// DefaultSettings returns Balanced length, Imaginative creativity and 50%
// adherence.
func DefaultSettings() Settings {
	return Settings{
		Length:     LengthBalanced,
		Creativity: CreativityImaginative,
		Adherence:  50,
	}
}

// Validate checks that every field is in range.
func (s Settings) Validate() error {
	if s.Length < LengthConcise || s.Length > LengthElaborate {
		return fmt.Errorf("response length out of range, got %d: %w", int(s.Length), ErrValidation)
	}
	if s.Creativity < CreativityGrounded || s.Creativity > CreativitySurreal {
		return fmt.Errorf("creativity out of range, got %d: %w", int(s.Creativity), ErrValidation)
	}
	if s.Adherence < AdherenceMin || s.Adherence > AdherenceMax {
		return fmt.Errorf("adherence must be in [0, 100], got %d: %w", s.Adherence, ErrValidation)
	}
	return nil
}

// WithAdherence returns a copy of s with adherence set to v, clamped to 0-100.
func (s Settings) WithAdherence(v int) Settings {
	s.Adherence = min(max(v, AdherenceMin), AdherenceMax)
	return s
}

// Params are the request parameters derived from Settings.
type Params struct {
	Temperature     float64
	MaxOutputTokens int
}

// Params maps the settings to request parameters.
func (s Settings) Params() Params {
	return Params{
		Temperature:     s.Creativity.Temperature(),
		MaxOutputTokens: s.Length.MaxOutputTokens(),
	}
}

// ApplyAdherence appends the strict directive when adherence is above 75,
// the loose directive when it is below 25, and returns instruction unchanged
// otherwise.
func ApplyAdherence(instruction string, adherence int) string {
	switch {
	case adherence > AdherenceStrict:
		return instruction + StrictDirective
	case adherence < AdherenceLoose:
		return instruction + LooseDirective
	default:
		return instruction
	}
}
