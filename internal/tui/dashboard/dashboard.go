// ABOUTME: Dashboard component laying out view panels in a responsive grid
// ABOUTME: Renders fields, gauges, sparklines and tables with loading, warning and empty states

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mikrodash/mikrodash/internal/tui/styles"
	"github.com/mikrodash/mikrodash/internal/tui/widgets"
	"github.com/mikrodash/mikrodash/internal/view"
)

const (
	// twoColumnWidth is the narrowest terminal that gets side-by-side panels.
	twoColumnWidth = 100
	// wideTableColumns marks tables that always span the full width.
	wideTableColumns = 5
	// defaultTableRows bounds table height when the dashboard has no height.
	defaultTableRows = 15
)

// Dashboard displays a page worth of panels
type Dashboard struct {
	panels  []view.Panel
	width   int
	height  int
	focus   string // ID of the panel whose table rows are selectable
	row     int
	spinner string
}

// New creates a dashboard of the given size
func New(width, height int) *Dashboard {
	return &Dashboard{width: width, height: height, spinner: "…"}
}

// Update replaces the rendered panels
func (d *Dashboard) Update(panels []view.Panel) {
	d.panels = panels
	d.clampRow()
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetSpinner sets the frame drawn for loading panels
func (d *Dashboard) SetSpinner(frame string) {
	d.spinner = frame
}

// Focus makes the table of panel id selectable. An empty id clears it.
func (d *Dashboard) Focus(id string) {
	if d.focus != id {
		d.focus = id
		d.row = 0
	}
	d.clampRow()
}

// Move shifts the selected row by delta within the focused table.
func (d *Dashboard) Move(delta int) {
	d.row += delta
	d.clampRow()
}

// Selected returns the selected row index, or -1 when nothing is selectable.
func (d *Dashboard) Selected() int {
	if d.rowCount() == 0 {
		return -1
	}
	return d.row
}

// Panels returns the panels currently displayed
func (d *Dashboard) Panels() []view.Panel {
	return d.panels
}

func (d *Dashboard) rowCount() int {
	for _, p := range d.panels {
		if p.ID == d.focus && p.Table != nil {
			return len(p.Table.Rows)
		}
	}
	return 0
}

func (d *Dashboard) clampRow() {
	n := d.rowCount()
	if d.row >= n {
		d.row = n - 1
	}
	if d.row < 0 {
		d.row = 0
	}
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if len(d.panels) == 0 {
		return styles.EmptyBox.Width(d.width).Render(d.spinner + " Loading...")
	}

	full := max(d.width, 40)
	half := full / 2
	twoCol := d.width >= twoColumnWidth

	var rows []string
	var pending []string
	flush := func() {
		switch len(pending) {
		case 1:
			rows = append(rows, pending[0])
		case 2:
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, pending[0], pending[1]))
		}
		pending = nil
	}

	for _, p := range d.panels {
		if !twoCol || isWide(p) {
			flush()
			rows = append(rows, d.renderPanel(p, full))
			continue
		}
		pending = append(pending, d.renderPanel(p, half))
		if len(pending) == 2 {
			flush()
		}
	}
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func isWide(p view.Panel) bool {
	return p.Table != nil && len(p.Table.Columns) >= wideTableColumns
}

func (d *Dashboard) renderPanel(p view.Panel, width int) string {
	config := widgets.DefaultBlockConfig()
	config.Width = width
	if p.ID == d.focus {
		config.BorderColor = styles.Primary
	}
	return widgets.Block(p.Title, d.panelBody(p, width-4), config)
}

func (d *Dashboard) panelBody(p view.Panel, width int) string {
	var parts []string

	if p.Loading && !p.HasContent() {
		return styles.EmptyBox.Render(d.spinner + " Loading " + strings.ToLower(p.Title) + "...")
	}
	if p.Warning != "" {
		parts = append(parts, lipgloss.NewStyle().Width(width).Render(widgets.StatusText(p.Warning, view.LevelWarning)))
	}
	if p.Empty != "" && p.Warning == "" {
		parts = append(parts, styles.EmptyBox.Width(width).Render(p.Empty))
	}
	if len(p.Fields) > 0 {
		parts = append(parts, renderFields(p.Fields))
	}
	if len(p.Gauges) > 0 {
		parts = append(parts, renderGauges(p.Gauges, width))
	}
	if len(p.Series) > 0 {
		parts = append(parts, renderSeries(p.Series, width))
	}
	if p.Table != nil && len(p.Table.Rows) > 0 {
		selected := -1
		if p.ID == d.focus {
			selected = d.row
		}
		parts = append(parts, d.renderTable(*p.Table, width, selected))
	}
	if p.Footer != "" {
		parts = append(parts, styles.Subtitle.Render(p.Footer))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n")
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

func renderFields(fields []view.Field) string {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	w := labelWidth(labels)

	lines := make([]string, len(fields))
	for i, f := range fields {
		label := styles.LabelStyle.Render(fmt.Sprintf("%-*s", w, f.Label))
		value := f.Value
		if f.Level != view.LevelNeutral {
			value = styles.Level(value, f.Level)
		} else {
			value = styles.ValueStyle.Render(value)
		}
		lines[i] = label + "  " + value
	}
	return strings.Join(lines, "\n")
}

func renderGauges(gauges []view.Gauge, width int) string {
	labels := make([]string, len(gauges))
	for i, g := range gauges {
		labels[i] = g.Label
	}
	w := labelWidth(labels)

	config := widgets.DefaultProgressBarConfig()
	config.Width = max(10, min(30, width-w-12))

	lines := make([]string, len(gauges))
	for i, g := range gauges {
		lines[i] = widgets.GaugeBar(g, w, config)
	}
	return strings.Join(lines, "\n")
}

var seriesColors = []lipgloss.Color{styles.Primary, styles.Secondary, styles.Notice, styles.Info}

func renderSeries(series []view.Series, width int) string {
	labels := make([]string, len(series))
	for i, s := range series {
		labels[i] = s.Label
	}
	w := labelWidth(labels)
	sparkWidth := max(8, width-w-16)

	lines := make([]string, len(series))
	for i, s := range series {
		lines[i] = widgets.SeriesLine(s, w, sparkWidth, seriesColors[i%len(seriesColors)])
	}
	return strings.Join(lines, "\n")
}

// tableRows is how many table rows fit, leaving room for panel chrome.
func (d *Dashboard) tableRows() int {
	if d.height <= 0 {
		return defaultTableRows
	}
	return max(3, d.height-8)
}

// window returns the first visible row so that selected stays on screen.
func window(total, visible, selected int) int {
	if total <= visible || selected < 0 {
		return 0
	}
	start := selected - visible/2
	return max(0, min(start, total-visible))
}

func (d *Dashboard) renderTable(tbl view.Table, width, selected int) string {
	visible := d.tableRows()
	start := window(len(tbl.Rows), visible, selected)
	end := min(len(tbl.Rows), start+visible)
	shown := tbl.Rows[start:end]

	rows := make([][]string, len(shown))
	for i, r := range shown {
		rows[i] = make([]string, len(r))
		for j, c := range r {
			rows[i][j] = c.Text
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		BorderRow(false).
		Headers(tbl.Columns...).
		Rows(rows...).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			style := styles.TableCell
			if row < len(shown) && col < len(shown[row]) {
				if l := shown[row][col].Level; l != view.LevelNeutral {
					style = style.Foreground(styles.LevelColor(l))
				}
			}
			if start+row == selected {
				style = style.Inherit(styles.SelectedRow).Bold(true)
			}
			return style
		})

	out := t.Render()
	if len(tbl.Rows) > visible {
		out += "\n" + styles.Subtitle.Render(fmt.Sprintf("rows %d-%d of %d", start+1, end, len(tbl.Rows)))
	}
	return out
}
