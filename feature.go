package aethel

import (
	"fmt"
	"slices"
)

// Mode is how a feature interacts with the user.
type Mode int

const (
	ModeSingleShot Mode = iota // One prompt, one result, no history.
	ModeChat                   // Streamed multi-turn conversation.
)

// String returns a human-readable label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeChat:
		return "chat"
	default:
		return "single-shot"
	}
}

// Kind is the type of output a feature produces.
type Kind int

const (
	KindText Kind = iota
	KindImage
	KindAudio
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	default:
		return "text"
	}
}

// Feature is one persona in the suite. Features are immutable once the
// catalog is built.
type Feature struct {
	ID          string
	Title       string
	Description string
	Mode        Mode
	Kind        Kind
	Model       string // target model name
	Instruction string // persona system instruction
}

// IsChat reports whether the feature is conversational.
func (f Feature) IsChat() bool { return f.Mode == ModeChat }

// Validate checks that f has the fields every caller depends on.
func (f Feature) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("feature id is required: %w", ErrValidation)
	}
	if f.Title == "" {
		return fmt.Errorf("feature %q: title is required: %w", f.ID, ErrValidation)
	}
	if f.Kind != KindText && f.Mode == ModeChat {
		return fmt.Errorf("feature %q: chat features must produce text: %w", f.ID, ErrValidation)
	}
	return nil
}

// Catalog is an ordered, read-only set of features keyed by ID.
type Catalog struct {
	features []Feature
	index    map[string]int
}

// NewCatalog builds a Catalog, preserving order. It rejects invalid
// features and duplicate IDs.
func NewCatalog(features []Feature) (*Catalog, error) {
	c := &Catalog{
		features: slices.Clone(features),
		index:    make(map[string]int, len(features)),
	}
	for i, f := range c.features {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.index[f.ID]; ok {
			return nil, fmt.Errorf("duplicate feature id %q: %w", f.ID, ErrValidation)
		}
		c.index[f.ID] = i
	}
	return c, nil
}

// List returns all features in catalog order. The returned slice is a copy.
func (c *Catalog) List() []Feature {
	return slices.Clone(c.features)
}

// Find returns the feature with the given ID.
func (c *Catalog) Find(id string) (Feature, error) {
	i, ok := c.index[id]
	if !ok {
		return Feature{}, fmt.Errorf("%q: %w", id, ErrFeatureNotFound)
	}
	return c.features[i], nil
}

// Len returns the number of features.
func (c *Catalog) Len() int { return len(c.features) }
