// ABOUTME: Device status and system resource panels
// ABOUTME: Usage gauges with colour bands and the resource history sparklines

package view

import (
	"fmt"
	"time"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/resource"
)

// UsageLevel maps a utilisation percentage to its colour band:
// >90 critical, >70 warning, >50 notice, otherwise ok.
func UsageLevel(percent float64) Level {
	switch {
	case percent > 90:
		return LevelCritical
	case percent > 70:
		return LevelWarning
	case percent > 50:
		return LevelNotice
	default:
		return LevelOK
	}
}

// UsedPercent returns (total-free)/total as a percentage, or 0 for an unknown total.
func UsedPercent(free, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(total-free) / float64(total) * 100
}

// DevicePanel renders connection details of the selected device.
func DevicePanel(r *resource.Resource[client.Device], now time.Time) Panel {
	return build("device", "Device Status", r, "Error loading device status", nil, "",
		func(p *Panel, d client.Device) {
			status, level := "Connected", LevelOK
			if d.Error != "" {
				status, level = "Error", LevelCritical
			}

			lastConnected := "Never"
			if d.LastConnected != "" {
				lastConnected = FormatTime(d.LastConnected, now)
			}

			p.Fields = []Field{
				{Label: "Name", Value: d.Name},
				{Label: "Host", Value: fmt.Sprintf("%s:%d", d.Host, d.Port)},
				{Label: "Status", Value: status, Level: level},
				{Label: "Last Connected", Value: lastConnected},
			}
			if d.Error != "" {
				p.Fields = append(p.Fields, Field{Label: "Error", Value: d.Error, Level: LevelCritical})
			}
		})
}

// SystemPanel renders the resource snapshot with CPU, memory and disk gauges.
func SystemPanel(r *resource.Resource[client.SystemResources]) Panel {
	return build("system", "System Resources", r, "System resources not available", nil, "",
		func(p *Panel, s client.SystemResources) {
			mem := UsedPercent(s.FreeMemory, s.TotalMemory)
			disk := UsedPercent(s.FreeHDD, s.TotalHDD)

			p.Fields = []Field{
				{Label: "Board", Value: s.BoardName},
				{Label: "RouterOS", Value: s.Version},
				{Label: "Architecture", Value: s.ArchitectureName},
				{Label: "Platform", Value: s.Platform},
				{Label: "Uptime", Value: FormatUptime(s.Uptime)},
			}
			p.Gauges = []Gauge{
				{Label: "CPU", Percent: s.CPULoad, Level: UsageLevel(s.CPULoad), Detail: FormatPercent(s.CPULoad)},
				{
					Label:   "Memory",
					Percent: mem,
					Level:   UsageLevel(mem),
					Detail:  fmt.Sprintf("%s / %s", FormatBytes(s.TotalMemory-s.FreeMemory), FormatBytes(s.TotalMemory)),
				},
				{
					Label:   "Disk",
					Percent: disk,
					Level:   UsageLevel(disk),
					Detail:  fmt.Sprintf("%s / %s", FormatBytes(s.TotalHDD-s.FreeHDD), FormatBytes(s.TotalHDD)),
				},
			}
		})
}

// HistoryPanel renders CPU and memory history. It reports false until history
// has been fetched successfully at least once, so callers append the panel
// only when it first becomes available.
func HistoryPanel(r *resource.Resource[[]client.ResourceSample]) (Panel, bool) {
	if r == nil {
		return Panel{}, false
	}
	if _, ok := r.Data(); !ok {
		return Panel{}, false
	}
	return build("history", "Resource History", r, "System history not available", isEmptySlice[client.ResourceSample], "No history recorded yet",
		func(p *Panel, samples []client.ResourceSample) {
			cpu := make([]float64, len(samples))
			mem := make([]float64, len(samples))
			for i, s := range samples {
				cpu[i] = s.CPULoad
				mem[i] = s.MemoryUsage
			}
			last := samples[len(samples)-1]
			p.Series = []Series{
				{Label: "CPU", Values: cpu, Latest: FormatPercent(last.CPULoad)},
				{Label: "Memory", Values: mem, Latest: FormatPercent(last.MemoryUsage)},
			}
			p.Footer = fmt.Sprintf("%d samples since %s", len(samples), shortTime(samples[0].Timestamp))
		}), true
}

func shortTime(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2 15:04")
}
