// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges and status indicators per display level

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikrodash/mikrodash/internal/tui/icons"
	"github.com/mikrodash/mikrodash/internal/tui/styles"
	"github.com/mikrodash/mikrodash/internal/view"
)

var (
	badgeDarkFg  = lipgloss.Color("#000000")
	badgeLightFg = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level view.Level) string {
	bg := styles.LevelColor(level)
	fg := badgeLightFg
	switch level {
	case view.LevelNotice, view.LevelWarning:
		fg = badgeDarkFg
	case view.LevelNeutral:
		bg = styles.Muted
	}

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true).
		Render(text)
}

// StatusIcon returns the icon for a level, coloured
func StatusIcon(level view.Level) string {
	var icon string
	switch level {
	case view.LevelOK:
		icon = icons.CheckOK.String()
	case view.LevelNotice, view.LevelWarning:
		icon = icons.Warning.String()
	case view.LevelCritical:
		icon = icons.Critical.String()
	case view.LevelInfo:
		icon = icons.Info.String()
	default:
		icon = "•"
	}
	return lipgloss.NewStyle().Foreground(styles.LevelColor(level)).Render(icon)
}

// StatusText returns styled status text with icon
func StatusText(text string, level view.Level) string {
	return fmt.Sprintf("%s %s", StatusIcon(level), styles.Level(text, level))
}
