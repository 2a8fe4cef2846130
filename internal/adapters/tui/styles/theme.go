package styles

import (
	"github.com/charmbracelet/lipgloss"

	"webdir/internal/domain"
)

// Palette is the set of colors for one theme
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Surface    lipgloss.Color // card background
	Muted      lipgloss.Color
	Primary    lipgloss.Color
	Link       lipgloss.Color
	Copy       lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
}

var (
	// DarkPalette mirrors the gray-900 page with white text
	DarkPalette = Palette{
		Background: lipgloss.Color("#111827"),
		Foreground: lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#1F2937"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Primary:    lipgloss.Color("#7C3AED"),
		Link:       lipgloss.Color("#60A5FA"),
		Copy:       lipgloss.Color("#4ADE80"),
		Error:      lipgloss.Color("#EF4444"),
		Warning:    lipgloss.Color("#F59E0B"),
	}

	// LightPalette mirrors the white page with gray-900 text
	LightPalette = Palette{
		Background: lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#111827"),
		Surface:    lipgloss.Color("#F3F4F6"),
		Muted:      lipgloss.Color("#6B7280"),
		Primary:    lipgloss.Color("#6D28D9"),
		Link:       lipgloss.Color("#2563EB"),
		Copy:       lipgloss.Color("#16A34A"),
		Error:      lipgloss.Color("#DC2626"),
		Warning:    lipgloss.Color("#D97706"),
	}
)

// Active is the palette the styles below were built from
var Active Palette

var (
	App         lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	MutedText   lipgloss.Style
	Placeholder lipgloss.Style

	// Entry blocks
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardBody     lipgloss.Style
	CardMeta     lipgloss.Style
	VisitAction  lipgloss.Style
	CopyAction   lipgloss.Style

	// Category selector
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style

	// Inputs
	InputLabel   lipgloss.Style
	InputField   lipgloss.Style
	InputFocused lipgloss.Style

	// Help
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Notifications
	Toast        lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
)

func init() {
	Use(domain.DefaultTheme)
}

// Use rebuilds every style from the palette for theme
func Use(theme domain.Theme) {
	if theme == domain.ThemeLight {
		build(LightPalette)
		return
	}
	build(DarkPalette)
}

func build(p Palette) {
	Active = p

	App = lipgloss.NewStyle().
		Padding(1, 2).
		Background(p.Background).
		Foreground(p.Foreground)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	MutedText = lipgloss.NewStyle().
		Foreground(p.Muted)

	Placeholder = lipgloss.NewStyle().
		Foreground(p.Muted).
		Align(lipgloss.Center).
		Padding(1, 0)

	Card = lipgloss.NewStyle().
		Background(p.Surface).
		Foreground(p.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)

	CardSelected = Card.
		BorderForeground(p.Primary)

	CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	CardBody = lipgloss.NewStyle().
		Foreground(p.Foreground)

	CardMeta = lipgloss.NewStyle().
		Foreground(p.Muted)

	VisitAction = lipgloss.NewStyle().
		Foreground(p.Link).
		Underline(true)

	CopyAction = lipgloss.NewStyle().
		Foreground(p.Copy).
		Underline(true)

	Chip = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	ChipSelected = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1)

	InputLabel = lipgloss.NewStyle().
		Foreground(p.Copy).
		Bold(true)

	InputField = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	HelpSeparator = lipgloss.NewStyle().
		Foreground(p.Muted).
		SetString(" • ")

	Toast = lipgloss.NewStyle().
		Background(p.Copy).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2)

	ToastWarning = Toast.
		Background(p.Warning)

	ToastError = Toast.
		Background(p.Error)
}
