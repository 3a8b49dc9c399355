package aethel

import "fmt"

// ThemeName identifies a color scheme. It is the value persisted under
// the theme preference key.
type ThemeName string

const (
	ThemeDark  ThemeName = "dark"  // "Void Mode"
	ThemeLight ThemeName = "light" // "Opal Mode"
)

// Toggle returns the other theme.
func (n ThemeName) Toggle() ThemeName {
	if n == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Label returns the display name of the theme.
func (n ThemeName) Label() string {
	if n == ThemeLight {
		return "Opal Mode"
	}
	return "Void Mode"
}

// ParseThemeName validates a persisted theme name.
func ParseThemeName(s string) (ThemeName, error) {
	switch ThemeName(s) {
	case ThemeDark, ThemeLight:
		return ThemeName(s), nil
	}
	return "", fmt.Errorf("unknown theme %q: %w", s, ErrValidation)
}

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal palette determines the actual RGB values.
type Theme struct {
	Name      ThemeName
	Text      int // Body text
	Primary   int // Titles, selection highlight
	Secondary int // Persona names, headings, links
	UserMsg   int // User message accent
	Error     int // Error messages
	Success   int // Saved files, confirmations
	Muted     int // Status bar, descriptions, placeholders
	Border    int // Card and panel borders
}

// ThemeFor returns the color mapping for name. Unknown names get the dark
// mapping.
func ThemeFor(name ThemeName) Theme {
	if name == ThemeLight {
		return Theme{
			Name:      ThemeLight,
			Text:      0,
			Primary:   4,
			Secondary: 5,
			UserMsg:   6,
			Error:     1,
			Success:   2,
			Muted:     8,
			Border:    7,
		}
	}
	return Theme{
		Name:      ThemeDark,
		Text:      15,
		Primary:   13,
		Secondary: 14,
		UserMsg:   12,
		Error:     9,
		Success:   10,
		Muted:     8,
		Border:    5,
	}
}

// DefaultTheme returns the dark theme.
func DefaultTheme() Theme { return ThemeFor(ThemeDark) }
