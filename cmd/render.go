// ABOUTME: Plain-text and JSON rendering of dashboard panels for the CLI
// ABOUTME: Shares the panel model with the TUI so both show the same data

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/monitor"
	"github.com/mikrodash/mikrodash/internal/tui/widgets"
	"github.com/mikrodash/mikrodash/internal/view"
)

const sparklineWidth = 30

// pageReport is the JSON document printed by the snapshot commands.
type pageReport struct {
	DeviceID   string       `json:"device_id"`
	DeviceName string       `json:"device_name,omitempty"`
	Page       string       `json:"page"`
	Panels     []view.Panel `json:"panels"`
}

// loadState runs one fetch cycle of page.
func loadState(ctx context.Context, api monitor.API, page monitor.Page, deviceID string, load monitor.LoadOptions) *monitor.State {
	snap := monitor.NewLoader(api).Load(ctx, page, deviceID, load)
	state := monitor.NewState()
	state.Apply(1, snap)
	return state
}

// loadPanels runs one fetch cycle of page and renders its panels.
func loadPanels(ctx context.Context, api monitor.API, page monitor.Page, deviceID string, load monitor.LoadOptions, opts monitor.PanelOptions) []view.Panel {
	return loadState(ctx, api, page, deviceID, load).Panels(page, opts, time.Now())
}

// selectPanels keeps the panels with the given ids, all of them when ids is empty.
func selectPanels(panels []view.Panel, ids ...string) []view.Panel {
	if len(ids) == 0 {
		return panels
	}
	var out []view.Panel
	for _, p := range panels {
		for _, id := range ids {
			if p.ID == id || (id == "traffic" && view.IsTrafficPanel(p.ID)) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// panelsExitCode is partial when any panel could not be loaded.
func panelsExitCode(panels []view.Panel) int {
	for _, p := range panels {
		if p.Warning != "" {
			return exitPartial
		}
	}
	return exitOK
}

// formatPanels renders panels of device in the selected output format.
func formatPanels(d client.Device, page monitor.Page, panels []view.Panel) string {
	if IsJSONOutput() {
		return formatJSON(pageReport{DeviceID: d.ID, DeviceName: d.Name, Page: page.String(), Panels: panels})
	}
	return formatPanelsHuman(d, page, panels)
}

// formatJSON formats v as indented JSON
func formatJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data)
}

// formatPanelsHuman formats panels for human readability
func formatPanelsHuman(d client.Device, page monitor.Page, panels []view.Panel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", page.Title(), deviceLabel(d))
	for _, p := range panels {
		b.WriteString("\n")
		b.WriteString(formatPanelHuman(p))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatPanelHuman(p view.Panel) string {
	var b strings.Builder
	b.WriteString(p.Title + "\n")
	b.WriteString(strings.Repeat("─", lipgloss.Width(p.Title)) + "\n")

	if p.Loading {
		b.WriteString("Not loaded\n")
		return b.String()
	}
	if p.Warning != "" {
		b.WriteString("! " + p.Warning + "\n")
	}
	if p.Empty != "" && p.Warning == "" {
		b.WriteString(p.Empty + "\n")
	}

	if len(p.Fields) > 0 {
		w := 0
		for _, f := range p.Fields {
			w = max(w, lipgloss.Width(f.Label))
		}
		for _, f := range p.Fields {
			fmt.Fprintf(&b, "%-*s  %s%s\n", w, f.Label, f.Value, levelSuffix(f.Level))
		}
	}

	if len(p.Gauges) > 0 {
		w := 0
		for _, g := range p.Gauges {
			w = max(w, lipgloss.Width(g.Label))
		}
		for _, g := range p.Gauges {
			line := fmt.Sprintf("%-*s  %5.1f%% [%s]", w, g.Label, g.Percent, g.Level)
			if g.Detail != "" && g.Detail != view.FormatPercent(g.Percent) {
				line += "  " + g.Detail
			}
			b.WriteString(line + "\n")
		}
	}

	if len(p.Series) > 0 {
		w := 0
		for _, s := range p.Series {
			w = max(w, lipgloss.Width(s.Label))
		}
		for _, s := range p.Series {
			fmt.Fprintf(&b, "%-*s  %s  %s\n", w, s.Label, widgets.Sparkline(s.Values, sparklineWidth, ""), s.Latest)
		}
	}

	if p.Table != nil && len(p.Table.Rows) > 0 {
		b.WriteString(formatTable(*p.Table) + "\n")
	}
	if p.Footer != "" {
		b.WriteString(p.Footer + "\n")
	}
	return b.String()
}

func levelSuffix(l view.Level) string {
	switch l {
	case view.LevelWarning, view.LevelCritical:
		return " [" + l.String() + "]"
	}
	return ""
}

// formatTable renders a borderless table with a rule under the header.
func formatTable(tbl view.Table) string {
	rows := make([][]string, len(tbl.Rows))
	for i, r := range tbl.Rows {
		rows[i] = make([]string, len(r))
		for j, c := range r {
			rows[i][j] = c.Text
		}
	}

	cell := lipgloss.NewStyle().PaddingRight(2)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(true).
		Headers(tbl.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		})
	return t.Render()
}
