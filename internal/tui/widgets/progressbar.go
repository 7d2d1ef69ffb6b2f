// ABOUTME: Usage bar with visual threshold zones
// ABOUTME: Colours each filled cell by the usage band it falls in

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikrodash/mikrodash/internal/tui/styles"
	"github.com/mikrodash/mikrodash/internal/view"
)

// ProgressBarConfig holds configuration for the progress bar
type ProgressBarConfig struct {
	Width      int
	EmptyColor lipgloss.Color
	ShowZones  bool // Show band boundaries in the empty part
}

// DefaultProgressBarConfig returns sensible defaults
func DefaultProgressBarConfig() ProgressBarConfig {
	return ProgressBarConfig{
		Width:      20,
		EmptyColor: styles.Surface,
		ShowZones:  true,
	}
}

// zoneBoundaries are where the notice, warning and critical bands start.
var zoneBoundaries = []float64{50, 70, 90}

// ProgressBar renders a usage bar; each filled cell takes the colour of its
// usage band.
func ProgressBar(percent float64, config ProgressBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}
	percent = clamp(percent)
	filled := int(percent / 100.0 * float64(config.Width))

	zones := make(map[int]bool, len(zoneBoundaries))
	for _, b := range zoneBoundaries {
		zones[int(b/100.0*float64(config.Width))] = true
	}

	empty := lipgloss.NewStyle().Foreground(config.EmptyColor)

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < config.Width; i++ {
		if i < filled {
			cellPercent := (float64(i) + 0.5) / float64(config.Width) * 100
			bar.WriteString(lipgloss.NewStyle().Foreground(styles.LevelColor(view.UsageLevel(cellPercent))).Render("█"))
			continue
		}
		if config.ShowZones && zones[i] {
			bar.WriteString(empty.Render("│"))
			continue
		}
		bar.WriteString(empty.Render("░"))
	}
	bar.WriteString("]")
	return bar.String()
}

// GaugeBar renders a gauge as label, bar and percentage.
func GaugeBar(g view.Gauge, labelWidth int, config ProgressBarConfig) string {
	label := styles.LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, g.Label))
	pct := styles.Level(fmt.Sprintf("%5.1f%%", g.Percent), g.Level)
	line := fmt.Sprintf("%s %s %s", label, ProgressBar(g.Percent, config), pct)
	if g.Detail != "" && g.Detail != view.FormatPercent(g.Percent) {
		line += " " + styles.Subtitle.Render(g.Detail)
	}
	return line
}

func clamp(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
