// Package aethel defines the domain types of a persona suite backed by
// generative models: the feature catalog, generation settings, chat
// sessions and the interfaces implemented by the transport, storage and
// presentation packages.
package aethel

// Preferences are the user choices that survive restarts.
type Preferences struct {
	Theme    ThemeName
	Settings Settings
}

// DefaultPreferences returns the dark theme and DefaultSettings.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    ThemeDark,
		Settings: DefaultSettings(),
	}
}

// PreferenceStore loads and saves Preferences. Load returns
// DefaultPreferences when nothing has been saved yet.
type PreferenceStore interface {
	Load() (Preferences, error)
	Save(p Preferences) error
}
