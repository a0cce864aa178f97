package tui

import (
	"github.com/blackwell-systems/bookconnect/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Accent colors shared by both themes
var (
	// ColorOrange marks the cursor and active controls
	ColorOrange = lipgloss.Color("#FB6820")

	// ColorTeal for borders and dividers
	ColorTeal = lipgloss.Color("#1B8487")

	// ColorTealLight for genre pills
	ColorTealLight = lipgloss.Color("#2ECFD4")

	// ColorGray for secondary text and help
	ColorGray = lipgloss.Color("#808080")

	// ColorRed for errors
	ColorRed = lipgloss.Color("196")
)

// Theme is a foreground/background pair. "Dark" is the text color and
// "Light" the surface color; night swaps the day values.
type Theme struct {
	Name  string
	Label string
	Dark  lipgloss.Color
	Light lipgloss.Color
}

var (
	// ThemeDay is dark text (10,10,20) on white.
	ThemeDay = Theme{Name: config.ThemeDay, Label: "Day", Dark: "#0A0A14", Light: "#FFFFFF"}

	// ThemeNight is white text on near-black (10,10,20).
	ThemeNight = Theme{Name: config.ThemeNight, Label: "Night", Dark: "#FFFFFF", Light: "#0A0A14"}

	// Themes lists the selectable themes in form order.
	Themes = []Theme{ThemeDay, ThemeNight}
)

// ThemeByName returns the named theme, falling back to day.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDay
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Theme Theme

	Base           lipgloss.Style
	Normal         lipgloss.Style
	Highlight      lipgloss.Style
	Help           lipgloss.Style
	Header         lipgloss.Style
	Border         lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	CardAuthor     lipgloss.Style
	Pill           lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Message        lipgloss.Style
	Error          lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t Theme) Styles {
	base := lipgloss.NewStyle().Foreground(t.Dark).Background(t.Light)
	return Styles{
		Theme:     t,
		Base:      base,
		Normal:    lipgloss.NewStyle().Foreground(t.Dark),
		Highlight: lipgloss.NewStyle().Foreground(ColorOrange).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(ColorGray),
		Header:    lipgloss.NewStyle().Foreground(t.Dark).Bold(true),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorTeal),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorOrange).
			Padding(0, 1),
		CardAuthor: lipgloss.NewStyle().Foreground(ColorGray),
		Pill: lipgloss.NewStyle().
			Foreground(ColorTealLight).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorOrange).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(ColorGray).
			Faint(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 2),
		Message: lipgloss.NewStyle().Foreground(t.Dark).Italic(true).Padding(1, 2),
		Error:   lipgloss.NewStyle().Foreground(ColorRed),
	}
}
