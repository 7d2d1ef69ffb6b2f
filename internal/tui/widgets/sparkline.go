// ABOUTME: Sparkline widget renders mini trend charts using block characters
// ABOUTME: Used for resource and interface traffic history

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikrodash/mikrodash/internal/tui/styles"
	"github.com/mikrodash/mikrodash/internal/view"
)

// SparklineBlocks are the Unicode block characters for different heights
var SparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a compact trend visualization of values (most recent
// last) in width characters, scaled between the smallest and largest value.
func Sparkline(values []float64, width int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := sampleValues(values, width)
	lo, hi := sampled[0], sampled[0]
	for _, v := range sampled {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	result := make([]rune, len(sampled))
	for i, v := range sampled {
		result[i] = valueToBlock(v, lo, hi)
	}

	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(color)
	}
	return style.Render(string(result))
}

// SeriesLine renders a labelled series with its latest value.
func SeriesLine(s view.Series, labelWidth, width int, color lipgloss.Color) string {
	label := styles.LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, s.Label))
	return fmt.Sprintf("%s %s %s", label, Sparkline(s.Values, width, color), styles.ValueStyle.Render(s.Latest))
}

// sampleValues fits values to width: shorter series are left-padded with
// their first value, longer ones are sampled evenly.
func sampleValues(values []float64, width int) []float64 {
	if len(values) == width {
		return values
	}

	result := make([]float64, width)
	if len(values) < width {
		padding := width - len(values)
		for i := 0; i < padding; i++ {
			result[i] = values[0]
		}
		copy(result[padding:], values)
		return result
	}

	ratio := float64(len(values)) / float64(width)
	for i := 0; i < width; i++ {
		idx := int(float64(i) * ratio)
		if idx >= len(values) {
			idx = len(values) - 1
		}
		result[i] = values[idx]
	}
	return result
}

func valueToBlock(value, lo, hi float64) rune {
	if hi == lo {
		return SparklineBlocks[len(SparklineBlocks)/2]
	}

	normalized := (value - lo) / (hi - lo)
	idx := int(normalized * float64(len(SparklineBlocks)-1))
	idx = max(0, min(idx, len(SparklineBlocks)-1))
	return SparklineBlocks[idx]
}
