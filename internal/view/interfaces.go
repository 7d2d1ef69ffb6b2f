// ABOUTME: Interface tables and per-interface traffic panels
// ABOUTME: Sorting by name, top-N by throughput, and link status classification

package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/resource"
)

// TopInterfaceCount is how many interfaces get a traffic panel on the dashboard.
const TopInterfaceCount = 4

// InterfaceStatus classifies an interface as UP, DISABLED or DOWN.
func InterfaceStatus(iface client.Interface) (string, Level) {
	if iface.Running {
		return "UP", LevelOK
	}
	if iface.Disabled {
		return "DISABLED", LevelNeutral
	}
	return "DOWN", LevelCritical
}

// SortInterfaces returns a copy sorted alphabetically by name.
func SortInterfaces(ifaces []client.Interface) []client.Interface {
	sorted := append([]client.Interface(nil), ifaces...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// TopInterfaces returns up to n running, enabled ethernet or wireless
// interfaces ordered by combined rx+tx speed, busiest first.
func TopInterfaces(ifaces []client.Interface, n int) []client.Interface {
	var candidates []client.Interface
	for _, iface := range ifaces {
		if (iface.Type == "ether" || iface.Type == "wlan") && iface.Running && !iface.Disabled {
			candidates = append(candidates, iface)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RxSpeed+candidates[i].TxSpeed > candidates[j].RxSpeed+candidates[j].TxSpeed
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// InterfacesPanel renders the interface table. The detailed variant adds
// counters, MTU, MAC and link times.
func InterfacesPanel(r *resource.Resource[[]client.Interface], detailed bool) Panel {
	return build("interfaces", "Interfaces", r, "Interfaces not available", isEmptySlice[client.Interface], "No interfaces found",
		func(p *Panel, ifaces []client.Interface) {
			t := &Table{Columns: []string{"Name", "Type", "Status", "RX", "TX"}}
			if detailed {
				t.Columns = append(t.Columns, "RX Total", "TX Total", "Errors", "Drops", "MTU", "MAC", "Last Link Up")
			}

			up := 0
			for _, iface := range SortInterfaces(ifaces) {
				status, level := InterfaceStatus(iface)
				if iface.Running {
					up++
				}
				row := []Cell{
					{Text: iface.Name},
					{Text: iface.Type},
					{Text: status, Level: level},
					{Text: FormatSpeed(iface.RxSpeed)},
					{Text: FormatSpeed(iface.TxSpeed)},
				}
				if detailed {
					errLevel := LevelNeutral
					if iface.RxError+iface.TxError > 0 {
						errLevel = LevelWarning
					}
					row = append(row,
						Cell{Text: FormatBytes(iface.RxByte)},
						Cell{Text: FormatBytes(iface.TxByte)},
						Cell{Text: fmt.Sprintf("%d / %d", iface.RxError, iface.TxError), Level: errLevel},
						Cell{Text: fmt.Sprintf("%d / %d", iface.RxDrop, iface.TxDrop)},
						Cell{Text: strconv.Itoa(iface.ActualMTU)},
						Cell{Text: FormatMAC(iface.MACAddress)},
						Cell{Text: iface.LastLinkUpTime},
					)
				}
				t.Rows = append(t.Rows, row)
			}
			p.Table = t
			p.Footer = fmt.Sprintf("%d of %d interfaces up", up, len(ifaces))
		})
}

// TrafficPanel renders the rx/tx history of one interface.
func TrafficPanel(name string, r *resource.Resource[[]client.TrafficSample]) Panel {
	return build("traffic:"+name, name, r, "Traffic history not available", isEmptySlice[client.TrafficSample], "No traffic recorded yet",
		func(p *Panel, samples []client.TrafficSample) {
			rx := make([]float64, len(samples))
			tx := make([]float64, len(samples))
			for i, s := range samples {
				rx[i] = s.RxSpeed
				tx[i] = s.TxSpeed
			}
			last := samples[len(samples)-1]
			p.Series = []Series{
				{Label: "RX", Values: rx, Latest: FormatSpeed(last.RxSpeed)},
				{Label: "TX", Values: tx, Latest: FormatSpeed(last.TxSpeed)},
			}
		})
}

// InterfaceNames lists the names in display order.
func InterfaceNames(ifaces []client.Interface) []string {
	names := make([]string, 0, len(ifaces))
	for _, iface := range SortInterfaces(ifaces) {
		names = append(names, iface.Name)
	}
	return names
}

// IsTrafficPanel reports whether a panel id belongs to a traffic panel.
func IsTrafficPanel(id string) bool {
	return strings.HasPrefix(id, "traffic:")
}
