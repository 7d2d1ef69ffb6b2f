package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikrodash/mikrodash/internal/view"
)

func TestSampleValues(t *testing.T) {
	short := sampleValues([]float64{1, 2}, 4)
	if len(short) != 4 || short[0] != 1 || short[1] != 1 || short[3] != 2 {
		t.Errorf("expected left padding with first value, got %v", short)
	}

	long := sampleValues([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 4)
	if len(long) != 4 || long[0] != 0 || long[3] != 6 {
		t.Errorf("expected even sampling, got %v", long)
	}
}

func TestSparklineScale(t *testing.T) {
	out := Sparkline([]float64{0, 50, 100}, 3, "")
	if out != "▁▄█" {
		t.Errorf("expected ▁▄█, got %q", out)
	}

	flat := Sparkline([]float64{5, 5, 5}, 3, "")
	if flat != "▅▅▅" {
		t.Errorf("expected mid blocks for a flat series, got %q", flat)
	}

	if Sparkline(nil, 10, "") != "" {
		t.Error("expected empty sparkline for no values")
	}
}

func TestProgressBarWidth(t *testing.T) {
	config := DefaultProgressBarConfig()
	config.Width = 10
	for _, pct := range []float64{-5, 0, 55, 100, 140} {
		bar := ProgressBar(pct, config)
		if w := lipgloss.Width(bar); w != 12 {
			t.Errorf("ProgressBar(%v) width = %d, want 12", pct, w)
		}
	}

	full := ProgressBar(100, config)
	if strings.Count(full, "█") != 10 {
		t.Errorf("expected a full bar, got %q", full)
	}
}

func TestGaugeBarShowsDetail(t *testing.T) {
	g := view.Gauge{Label: "Memory", Percent: 75, Level: view.LevelWarning, Detail: "768 MB / 1 GB"}
	out := GaugeBar(g, 6, DefaultProgressBarConfig())
	for _, want := range []string{"Memory", "75.0%", "768 MB / 1 GB"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestBlockAlignment(t *testing.T) {
	config := DefaultBlockConfig()
	config.Width = 30
	out := Block("Device Status", "Status  Connected\nan overly long line that will not fit inside the box", config)

	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 30 {
			t.Errorf("line %d width = %d, want 30: %q", i, w, line)
		}
	}
	if !strings.Contains(out, "Device Status") {
		t.Error("expected title in the top border")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("interfaces", 6); got != "int..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("lan", 6); got != "lan" {
		t.Errorf("truncate = %q", got)
	}
}
