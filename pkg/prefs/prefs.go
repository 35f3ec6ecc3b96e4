package prefs

// Theme is the presentation color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultLocale is used when no locale preference has been saved.
const DefaultLocale = "fr"

// Preferences is the only durable state in the system: the UI theme and
// the locale. It is loaded once at startup, owned and passed down by the
// presentation layer, and persisted immediately on every change.
type Preferences struct {
	Theme  Theme  `json:"theme"`
	Locale string `json:"locale"`
}

// Default returns the preferences used when nothing has been persisted.
func Default() Preferences {
	return Preferences{Theme: ThemeLight, Locale: DefaultLocale}
}

// normalize repairs values read from storage so callers never see an
// unknown theme or an empty locale.
func (p Preferences) normalize() Preferences {
	if p.Theme != ThemeLight && p.Theme != ThemeDark {
		p.Theme = ThemeLight
	}
	if p.Locale == "" {
		p.Locale = DefaultLocale
	}
	return p
}

// ToggleTheme flips between light and dark.
func (p Preferences) ToggleTheme() Preferences {
	if p.Theme == ThemeDark {
		p.Theme = ThemeLight
	} else {
		p.Theme = ThemeDark
	}
	return p
}
