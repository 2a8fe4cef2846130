package domain

// Theme is the visual mode of the interface
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// DefaultTheme is used when nothing has been persisted
const DefaultTheme = ThemeDark

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme maps a persisted value to a Theme. Only the literal "light"
// selects the light theme; anything else, including "", is dark.
func ParseTheme(s string) Theme {
	if s == "light" {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
