// ABOUTME: Alert ordering, filtering and the alert panels
// ABOUTME: Dashboard summary shows recent active alerts; the alerts page shows the full table

package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/resource"
)

// RecentAlertCount is how many active alerts the dashboard summary lists.
const RecentAlertCount = 5

// Filter values shared by the status and severity filters.
const (
	FilterAll      = "all"
	StatusActive   = "active"
	StatusResolved = "resolved"
)

var (
	StatusFilters   = []string{FilterAll, StatusActive, StatusResolved}
	SeverityFilters = []string{FilterAll, "critical", "warning", "info"}
)

// NextFilter returns the value following current in options, wrapping around.
func NextFilter(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// SeverityLevel maps an alert severity to its colour class.
func SeverityLevel(severity string) Level {
	switch strings.ToLower(severity) {
	case "critical", "error":
		return LevelCritical
	case "warning":
		return LevelWarning
	case "info":
		return LevelInfo
	default:
		return LevelNeutral
	}
}

func createdAt(a client.Alert) time.Time {
	t, _ := ParseTime(a.Created)
	return t
}

// SortAlerts returns a copy ordered active first, then newest created first.
func SortAlerts(alerts []client.Alert) []client.Alert {
	sorted := append([]client.Alert(nil), alerts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Active != sorted[j].Active {
			return sorted[i].Active
		}
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})
	return sorted
}

// RecentActive returns the n most recently created active alerts.
func RecentActive(alerts []client.Alert, n int) []client.Alert {
	var active []client.Alert
	for _, a := range alerts {
		if a.Active {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return createdAt(active[i]).After(createdAt(active[j]))
	})
	if len(active) > n {
		active = active[:n]
	}
	return active
}

// ActiveAlertIDs lists the ids of every active alert.
func ActiveAlertIDs(alerts []client.Alert) []client.ID {
	var ids []client.ID
	for _, a := range alerts {
		if a.Active {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// AlertFilter narrows the alert table by status and severity.
type AlertFilter struct {
	Status   string
	Severity string
}

// Match reports whether an alert passes both filters. Empty values match all.
func (f AlertFilter) Match(a client.Alert) bool {
	switch f.Status {
	case StatusActive:
		if !a.Active {
			return false
		}
	case StatusResolved:
		if a.Active {
			return false
		}
	}
	if f.Severity != "" && f.Severity != FilterAll && !strings.EqualFold(a.Severity, f.Severity) {
		return false
	}
	return true
}

// Apply returns the matching alerts in their original order.
func (f AlertFilter) Apply(alerts []client.Alert) []client.Alert {
	var out []client.Alert
	for _, a := range alerts {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

func alertStatus(a client.Alert) (string, Level) {
	if a.Active {
		return "Active", LevelCritical
	}
	return "Resolved", LevelOK
}

// AlertsSummaryPanel is the dashboard's recent-alerts widget.
func AlertsSummaryPanel(r *resource.Resource[[]client.Alert], now time.Time) Panel {
	return build("alerts", "Recent Alerts", r, "Alerts not available", isEmptySlice[client.Alert], "No alerts",
		func(p *Panel, alerts []client.Alert) {
			recent := RecentActive(alerts, RecentAlertCount)
			if len(recent) == 0 {
				p.Empty = "No active alerts"
				return
			}
			t := &Table{Columns: []string{"Severity", "Type", "Message", "Created"}}
			for _, a := range recent {
				t.Rows = append(t.Rows, []Cell{
					{Text: strings.ToUpper(a.Severity), Level: SeverityLevel(a.Severity)},
					{Text: a.Type},
					{Text: a.Message},
					{Text: FormatTime(a.Created, now)},
				})
			}
			p.Table = t
			if total := len(ActiveAlertIDs(alerts)); total > RecentAlertCount {
				p.Footer = fmt.Sprintf("View All Alerts (%d)", total)
			}
		})
}

// AlertsTablePanel is the alerts page table after filtering.
func AlertsTablePanel(r *resource.Resource[[]client.Alert], filter AlertFilter, now time.Time) Panel {
	return build("alerts-table", "Alerts", r, "Alerts not available", isEmptySlice[client.Alert], "No alerts found",
		func(p *Panel, alerts []client.Alert) {
			shown := filter.Apply(SortAlerts(alerts))
			if len(shown) == 0 {
				p.Empty = "No alerts match your current filters"
				return
			}
			t := &Table{Columns: []string{"ID", "Severity", "Type", "Message", "Created", "Status", "Resolved"}}
			for _, a := range shown {
				status, level := alertStatus(a)
				resolved := ""
				if a.ResolvedTime != "" {
					resolved = FormatTime(a.ResolvedTime, now)
				}
				t.Rows = append(t.Rows, []Cell{
					{Text: string(a.ID)},
					{Text: strings.ToUpper(a.Severity), Level: SeverityLevel(a.Severity)},
					{Text: a.Type},
					{Text: a.Message},
					{Text: FormatTime(a.Created, now)},
					{Text: status, Level: level},
					{Text: resolved},
				})
			}
			p.Table = t
			p.Footer = fmt.Sprintf("%d of %d alerts, %d active", len(shown), len(alerts), len(ActiveAlertIDs(alerts)))
		})
}

// VisibleAlerts returns the alerts in the order AlertsTablePanel lists them.
func VisibleAlerts(alerts []client.Alert, filter AlertFilter) []client.Alert {
	return filter.Apply(SortAlerts(alerts))
}
