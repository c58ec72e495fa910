package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the board
type Theme struct {
	Name string

	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary lipgloss.Color
	Accent  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// DefaultTheme is the built-in color theme
var DefaultTheme = Theme{
	Name: "Default",

	Foreground:    lipgloss.Color("#e5e7eb"),
	ForegroundDim: lipgloss.Color("#6b7280"),

	Primary: lipgloss.Color("#3b82f6"),
	Accent:  lipgloss.Color("#8b5cf6"),

	Success: lipgloss.Color("#10b981"),
	Warning: lipgloss.Color("#f59e0b"),
	Error:   lipgloss.Color("#ef4444"),

	Border:      lipgloss.Color("#374151"),
	BorderFocus: lipgloss.Color("#3b82f6"),
	Selection:   lipgloss.Color("#1e3a8a"),
}

// MaxWidth caps the rendered width on wide terminals
const MaxWidth = 100

// ContentWidth returns the smaller of the terminal width and MaxWidth
func ContentWidth(terminalWidth int) int {
	if terminalWidth <= 0 || terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// Styles holds the pre-computed styles for the board
type Styles struct {
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Stats cards
	Card      lipgloss.Style
	CardValue lipgloss.Style
	CardLabel lipgloss.Style

	Section lipgloss.Style

	// Task list
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	Done         lipgloss.Style
	Description  lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Error lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles creates styles from theme
func NewStyles(t Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			MarginRight(1),

		CardValue: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		CardLabel: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Section: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			MarginTop(1),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 1).
			Bold(true),

		Done: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Strikethrough(true),

		Description: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			PaddingLeft(6),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(t.Error),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),
	}
}

// Swatch renders label in its own color; invalid colors fall back to plain text
func Swatch(label, color string) string {
	if color == "" {
		return label
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("● " + label)
}
