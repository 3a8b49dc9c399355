// Package json persists aethel preferences as a JSON document.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/aethel"
)

// Keys of the persisted document.
const (
	ThemeKey    = "aethel-theme"
	SettingsKey = "aethel-settings"
)

// Interface compliance check.
var _ aethel.PreferenceStore = (*PreferenceStore)(nil)

// document is the wire format. Absent keys fall back to defaults.
type document struct {
	Theme    *string      `json:"aethel-theme,omitempty"`
	Settings *settingsDTO `json:"aethel-settings,omitempty"`
}

type settingsDTO struct {
	Length     string `json:"length"`
	Creativity string `json:"creativity"`
	Adherence  int    `json:"adherence"`
}

// MarshalPreferences serializes Preferences to JSON.
func MarshalPreferences(p aethel.Preferences) ([]byte, error) {
	if err := p.Settings.Validate(); err != nil {
		return nil, err
	}
	theme := string(p.Theme)
	doc := document{
		Theme: &theme,
		Settings: &settingsDTO{
			Length:     p.Settings.Length.String(),
			Creativity: p.Settings.Creativity.String(),
			Adherence:  p.Settings.Adherence,
		},
	}
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalPreferences deserializes Preferences from JSON. Keys that are
// absent keep their default values.
func UnmarshalPreferences(data []byte) (aethel.Preferences, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return aethel.Preferences{}, fmt.Errorf("unmarshal preferences: %w", err)
	}
	p := aethel.DefaultPreferences()
	if doc.Theme != nil {
		theme, err := aethel.ParseThemeName(*doc.Theme)
		if err != nil {
			return aethel.Preferences{}, err
		}
		p.Theme = theme
	}
	if doc.Settings != nil {
		length, err := aethel.ParseResponseLength(doc.Settings.Length)
		if err != nil {
			return aethel.Preferences{}, err
		}
		creativity, err := aethel.ParseCreativity(doc.Settings.Creativity)
		if err != nil {
			return aethel.Preferences{}, err
		}
		p.Settings = aethel.Settings{
			Length:     length,
			Creativity: creativity,
			Adherence:  doc.Settings.Adherence,
		}
		if err := p.Settings.Validate(); err != nil {
			return aethel.Preferences{}, err
		}
	}
	return p, nil
}

// PreferenceStore reads and writes preferences at a fixed path.
type PreferenceStore struct {
	path string
}

// NewPreferenceStore returns a store backed by the file at path.
func NewPreferenceStore(path string) *PreferenceStore {
	return &PreferenceStore{path: path}
}

// Path returns the backing file path.
func (s *PreferenceStore) Path() string { return s.path }

// Load reads preferences. A missing file yields the defaults.
func (s *PreferenceStore) Load() (aethel.Preferences, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return aethel.DefaultPreferences(), nil
	}
	if err != nil {
		return aethel.Preferences{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalPreferences(data)
}

// Save writes preferences atomically, creating parent directories as needed.
func (s *PreferenceStore) Save(p aethel.Preferences) error {
	data, err := MarshalPreferences(p)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
