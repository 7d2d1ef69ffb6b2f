// ABOUTME: Titled box widget for dashboard panels
// ABOUTME: Draws a bordered block with the panel title set into the top border

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikrodash/mikrodash/internal/tui/styles"
)

// BlockConfig holds configuration for a titled block
type BlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
}

// DefaultBlockConfig returns sensible defaults
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		Width:       40,
		BorderColor: styles.Muted,
		TitleColor:  styles.Primary,
	}
}

// Block renders body inside a rounded box of config.Width columns with
// title set into the top border. Body lines wider than the box are truncated.
func Block(title, body string, config BlockConfig) string {
	if config.Width < 8 {
		config.Width = 8
	}
	innerWidth := config.Width - 4
	border := lipgloss.NewStyle().Foreground(config.BorderColor)

	title = truncate(title, innerWidth-2)
	titleStr := lipgloss.NewStyle().Foreground(config.TitleColor).Bold(true).Render(title)
	fill := max(0, config.Width-5-lipgloss.Width(title))
	lines := []string{border.Render("╭─ ") + titleStr + border.Render(" "+strings.Repeat("─", fill)+"╮")}

	for _, line := range strings.Split(body, "\n") {
		if lipgloss.Width(line) > innerWidth {
			line = lipgloss.NewStyle().MaxWidth(innerWidth).Render(line)
		}
		pad := max(0, innerWidth-lipgloss.Width(line))
		lines = append(lines, border.Render("│ ")+line+strings.Repeat(" ", pad)+border.Render(" │"))
	}

	lines = append(lines, border.Render("╰"+strings.Repeat("─", config.Width-2)+"╯"))
	return strings.Join(lines, "\n")
}

// truncate shortens a string to maxLen runes with ellipsis if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:max(0, maxLen)])
	}
	return string(r[:maxLen-3]) + "..."
}
