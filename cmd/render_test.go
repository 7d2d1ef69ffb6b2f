package cmd

import (
	"strings"
	"testing"

	"github.com/mikrodash/mikrodash/internal/view"
)

func TestFormatPanelHuman_States(t *testing.T) {
	tests := []struct {
		name     string
		panel    view.Panel
		expected []string
		absent   []string
	}{
		{
			name:     "loading",
			panel:    view.Panel{ID: "system", Title: "System Resources", Loading: true},
			expected: []string{"System Resources", "Not loaded"},
		},
		{
			name:     "warning hides empty",
			panel:    view.Panel{ID: "alerts", Title: "Alerts", Warning: "Alerts not available: boom", Empty: "No alerts"},
			expected: []string{"! Alerts not available: boom"},
			absent:   []string{"No alerts\n"},
		},
		{
			name: "fields with levels",
			panel: view.Panel{ID: "device", Title: "Device Status", Fields: []view.Field{
				{Label: "Status", Value: "Error", Level: view.LevelCritical},
				{Label: "Host", Value: "10.0.0.2:8728"},
			}},
			expected: []string{"Status  Error [critical]", "Host    10.0.0.2:8728"},
		},
		{
			name: "gauges",
			panel: view.Panel{ID: "system", Title: "System Resources", Gauges: []view.Gauge{
				{Label: "Memory", Percent: 75, Level: view.LevelWarning, Detail: "768 MB / 1 GB"},
			}},
			expected: []string{"Memory   75.0% [warning]  768 MB / 1 GB"},
		},
		{
			name: "series",
			panel: view.Panel{ID: "history", Title: "Resource History", Series: []view.Series{
				{Label: "CPU", Values: []float64{0, 50, 100}, Latest: "100.0%"},
			}},
			expected: []string{"CPU", "█", "100.0%"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := formatPanelHuman(tc.panel)
			for _, want := range tc.expected {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in\n%s", want, out)
				}
			}
			for _, unwanted := range tc.absent {
				if strings.Contains(out, unwanted) {
					t.Errorf("expected %q not in\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestFormatTable(t *testing.T) {
	out := formatTable(view.Table{
		Columns: []string{"Name", "Status"},
		Rows: [][]view.Cell{
			{{Text: "ether1"}, {Text: "UP"}},
			{{Text: "wlan1"}, {Text: "DOWN"}},
		},
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and two rows, got %d lines\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Name") || !strings.Contains(lines[1], "─") {
		t.Errorf("expected header with a rule below\n%s", out)
	}
	if strings.Contains(out, "│") {
		t.Errorf("expected no column borders\n%s", out)
	}
}

func TestSelectPanels(t *testing.T) {
	panels := []view.Panel{{ID: "interfaces"}, {ID: "traffic:ether1"}, {ID: "ip"}}

	if got := selectPanels(panels); len(got) != 3 {
		t.Errorf("expected all panels without ids, got %d", len(got))
	}
	got := selectPanels(panels, "traffic", "ip")
	if len(got) != 2 || got[0].ID != "traffic:ether1" || got[1].ID != "ip" {
		t.Errorf("unexpected selection: %+v", got)
	}
}

func TestPanelsExitCode(t *testing.T) {
	if panelsExitCode([]view.Panel{{ID: "a"}, {ID: "b", Empty: "none"}}) != exitOK {
		t.Error("expected ok without warnings")
	}
	if panelsExitCode([]view.Panel{{ID: "a"}, {ID: "b", Warning: "not available"}}) != exitPartial {
		t.Error("expected partial with a warning")
	}
}
