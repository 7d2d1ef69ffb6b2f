// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines colors, borders, and the level-to-colour mapping used by panels

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mikrodash/mikrodash/internal/view"
)

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#0EA5E9") // Sky
	Secondary = lipgloss.Color("#10B981") // Green
	Notice    = lipgloss.Color("#EAB308") // Yellow
	Warning   = lipgloss.Color("#F97316") // Orange
	Danger    = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#3B82F6") // Blue
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Surface   = lipgloss.Color("#374151") // Elevated surface background

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted)

	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	WarningBox = lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true)

	EmptyBox = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	TableHeader = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	TableCell = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedRow = lipgloss.NewStyle().
			Background(Surface)
)

// LevelColor maps a display level to its colour.
func LevelColor(l view.Level) lipgloss.Color {
	switch l {
	case view.LevelOK:
		return Secondary
	case view.LevelNotice:
		return Notice
	case view.LevelWarning:
		return Warning
	case view.LevelCritical:
		return Danger
	case view.LevelInfo:
		return Info
	default:
		return Text
	}
}

// Level renders text in the colour of l. Neutral text is left unstyled.
func Level(text string, l view.Level) string {
	if l == view.LevelNeutral {
		return text
	}
	return lipgloss.NewStyle().Foreground(LevelColor(l)).Render(text)
}
