// ABOUTME: Address and service tables: IP, ARP, DHCP, firewall, wireless, CAPsMAN
// ABOUTME: These endpoints are often absent on a device, so warnings carry an offline hint

package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/resource"
)

const offlineHint = "The device may be offline or this feature may not be supported."

// buildOptional is build for endpoints a device may not expose.
func buildOptional[T any](id, title string, r *resource.Resource[[]T], what, emptyMsg string, fill func(*Panel, []T)) Panel {
	p := build(id, title, r, what+" not available", isEmptySlice[T], emptyMsg, fill)
	if p.Warning != "" {
		p.Warning += ". " + offlineHint
	}
	return p
}

// SignalBars converts a signal strength in dBm to a 0-4 bar count.
func SignalBars(dbm int) int {
	switch {
	case dbm >= -65:
		return 4
	case dbm >= -75:
		return 3
	case dbm >= -85:
		return 2
	case dbm >= -95:
		return 1
	default:
		return 0
	}
}

// Signal quality ranges in display order.
var SignalRanges = []string{
	"Excellent (-50 to -65 dBm)",
	"Good (-65 to -75 dBm)",
	"Fair (-75 to -85 dBm)",
	"Poor (< -85 dBm)",
}

// SignalQuality returns the index into SignalRanges for a signal strength.
func SignalQuality(dbm int) int {
	switch {
	case dbm >= -65:
		return 0
	case dbm >= -75:
		return 1
	case dbm >= -85:
		return 2
	default:
		return 3
	}
}

var signalLevels = []Level{LevelOK, LevelInfo, LevelWarning, LevelCritical}

func signalLevel(dbm int) Level {
	return signalLevels[SignalQuality(dbm)]
}

func signalCell(dbm int) Cell {
	bars := SignalBars(dbm)
	return Cell{
		Text:  strings.Repeat("▮", bars) + strings.Repeat("▯", 4-bars) + fmt.Sprintf(" %d dBm", dbm),
		Level: signalLevel(dbm),
	}
}

func kind(dynamic bool) Cell {
	if dynamic {
		return Cell{Text: "Dynamic", Level: LevelInfo}
	}
	return Cell{Text: "Static"}
}

func enabled(disabled bool) Cell {
	if disabled {
		return Cell{Text: "Disabled"}
	}
	return Cell{Text: "Active", Level: LevelOK}
}

// IPAddressesPanel lists addresses ordered by interface, then address.
func IPAddressesPanel(r *resource.Resource[[]client.IPAddress]) Panel {
	return build("ip", "IP Addresses", r, "IP addresses not available", isEmptySlice[client.IPAddress], "No IP addresses found",
		func(p *Panel, addrs []client.IPAddress) {
			sorted := append([]client.IPAddress(nil), addrs...)
			sort.SliceStable(sorted, func(i, j int) bool {
				if sorted[i].Interface != sorted[j].Interface {
					return sorted[i].Interface < sorted[j].Interface
				}
				return sorted[i].Address < sorted[j].Address
			})
			t := &Table{Columns: []string{"Address", "Network", "Interface", "Status", "Type", "Comment"}}
			for _, a := range sorted {
				t.Rows = append(t.Rows, []Cell{
					{Text: a.Address},
					{Text: a.Network},
					{Text: a.Interface},
					enabled(a.Disabled),
					kind(a.Dynamic),
					{Text: a.Comment},
				})
			}
			p.Table = t
		})
}

// ARPPanel lists ARP entries ordered by interface, then address.
func ARPPanel(r *resource.Resource[[]client.ARPEntry]) Panel {
	return buildOptional("arp", "ARP Table", r, "ARP entries", "No ARP entries found",
		func(p *Panel, entries []client.ARPEntry) {
			sorted := append([]client.ARPEntry(nil), entries...)
			sort.SliceStable(sorted, func(i, j int) bool {
				if sorted[i].Interface != sorted[j].Interface {
					return sorted[i].Interface < sorted[j].Interface
				}
				return sorted[i].Address < sorted[j].Address
			})
			t := &Table{Columns: []string{"IP Address", "MAC Address", "Interface", "Status", "Type"}}
			for _, e := range sorted {
				status := Cell{Text: "Incomplete", Level: LevelWarning}
				if e.Complete {
					status = Cell{Text: "Complete", Level: LevelOK}
				}
				t.Rows = append(t.Rows, []Cell{
					{Text: e.Address},
					{Text: FormatMAC(e.MACAddress)},
					{Text: e.Interface},
					status,
					kind(e.Dynamic),
				})
			}
			p.Table = t
		})
}

// DHCPPanel lists DHCP leases.
func DHCPPanel(r *resource.Resource[[]client.DHCPLease]) Panel {
	return buildOptional("dhcp", "DHCP Leases", r, "DHCP leases", "No DHCP leases found",
		func(p *Panel, leases []client.DHCPLease) {
			t := &Table{Columns: []string{"IP Address", "MAC Address", "Hostname", "Status", "Expires After", "Client ID"}}
			bound := 0
			for _, l := range leases {
				var status Cell
				switch l.Status {
				case "bound":
					status = Cell{Text: "Bound", Level: LevelOK}
					bound++
				case "offered":
					status = Cell{Text: "Offered", Level: LevelWarning}
				default:
					status = Cell{Text: orDefault(l.Status, "Unknown")}
				}
				t.Rows = append(t.Rows, []Cell{
					{Text: l.Address},
					{Text: FormatMAC(l.MACAddress)},
					{Text: orDefault(l.Hostname, "No hostname")},
					status,
					{Text: orDefault(l.ExpiresAfter, "N/A")},
					{Text: orDefault(l.ClientID, "N/A")},
				})
			}
			p.Table = t
			p.Footer = fmt.Sprintf("%d leases, %d bound", len(leases), bound)
		})
}

// FirewallPanel lists filter rules with their counters.
func FirewallPanel(r *resource.Resource[[]client.FirewallRule]) Panel {
	return buildOptional("firewall", "Firewall Rules", r, "Firewall rules", "No firewall rules found",
		func(p *Panel, rules []client.FirewallRule) {
			t := &Table{Columns: []string{"Chain", "Action", "Status", "Packets", "Bytes", "Comment"}}
			for _, rule := range rules {
				action := Cell{Text: strings.ToUpper(rule.Action), Level: LevelInfo}
				switch rule.Action {
				case "drop":
					action.Level = LevelCritical
				case "accept":
					action.Level = LevelOK
				}
				t.Rows = append(t.Rows, []Cell{
					{Text: rule.Chain},
					action,
					enabled(rule.Disabled),
					{Text: humanize.Comma(rule.Packets)},
					{Text: FormatBytes(rule.Bytes)},
					{Text: rule.Comment},
				})
			}
			p.Table = t
		})
}

// WirelessPanel lists stations registered on local wireless interfaces.
func WirelessPanel(r *resource.Resource[[]client.WirelessClient]) Panel {
	return buildOptional("wireless", "Wireless Clients", r, "Wireless clients", "No wireless clients found",
		func(p *Panel, clients []client.WirelessClient) {
			t := &Table{Columns: []string{"Interface", "MAC Address", "Signal", "RX/TX Rate", "Data", "Uptime"}}
			signals := make([]int, 0, len(clients))
			for _, c := range clients {
				signals = append(signals, c.SignalStrength)
				t.Rows = append(t.Rows, []Cell{
					{Text: c.Interface},
					{Text: FormatMAC(c.MACAddress)},
					signalCell(c.SignalStrength),
					{Text: fmt.Sprintf("%d / %d Mbps", c.RxRate, c.TxRate)},
					{Text: FormatBytes(c.RxBytes) + " / " + FormatBytes(c.TxBytes)},
					{Text: FormatUptime(c.Uptime)},
				})
			}
			p.Table = t
			p.Fields = signalFields(signals)
		})
}

// CapsmanPanel lists stations registered through CAPsMAN access points.
func CapsmanPanel(r *resource.Resource[[]client.CapsmanRegistration]) Panel {
	return buildOptional("capsman", "CAPsMAN Registrations", r, "CAPsMAN registrations", "No CAPsMAN registrations found",
		func(p *Panel, regs []client.CapsmanRegistration) {
			t := &Table{Columns: []string{"Interface", "Radio Name", "MAC Address", "SSID", "Signal", "RX/TX Rate", "Status"}}
			signals := make([]int, 0, len(regs))
			for _, reg := range regs {
				signals = append(signals, reg.SignalStrength)
				status := Cell{Text: orDefault(reg.Status, "Unknown")}
				if reg.Status == "connected" {
					status = Cell{Text: "Connected", Level: LevelOK}
				}
				t.Rows = append(t.Rows, []Cell{
					{Text: reg.Interface},
					{Text: reg.RadioName},
					{Text: FormatMAC(reg.MACAddress)},
					{Text: reg.SSID},
					signalCell(reg.SignalStrength),
					{Text: fmt.Sprintf("%d / %d Mbps", reg.RxRate, reg.TxRate)},
					status,
				})
			}
			p.Table = t
			p.Fields = signalFields(signals)
		})
}

// signalFields summarises station counts per signal range.
func signalFields(signals []int) []Field {
	counts := make([]int, len(SignalRanges))
	for _, s := range signals {
		counts[SignalQuality(s)]++
	}
	fields := make([]Field, len(SignalRanges))
	for i, label := range SignalRanges {
		fields[i] = Field{Label: label, Value: fmt.Sprintf("%d", counts[i]), Level: signalLevels[i]}
	}
	return fields
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
