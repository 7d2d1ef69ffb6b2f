// ABOUTME: Display state of the current page, fed by fetch cycle snapshots
// ABOUTME: Applies results in cycle order and renders the page's panels

package monitor

import (
	"time"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/resource"
	"github.com/mikrodash/mikrodash/internal/view"
)

// PanelOptions carries the page-local filters applied at render time.
type PanelOptions struct {
	AlertFilter view.AlertFilter
	LogFilter   view.LogFilter
}

// State is the resource state behind the panels of one page. It is owned by
// a single goroutine.
type State struct {
	Device      resource.Resource[client.Device]
	System      resource.Resource[client.SystemResources]
	History     resource.Resource[[]client.ResourceSample]
	Interfaces  resource.Resource[[]client.Interface]
	Alerts      resource.Resource[[]client.Alert]
	Logs        resource.Resource[[]client.LogEntry]
	IPAddresses resource.Resource[[]client.IPAddress]
	ARP         resource.Resource[[]client.ARPEntry]
	DHCP        resource.Resource[[]client.DHCPLease]
	Firewall    resource.Resource[[]client.FirewallRule]
	Wireless    resource.Resource[[]client.WirelessClient]
	Capsman     resource.Resource[[]client.CapsmanRegistration]

	traffic      map[string]*resource.Resource[[]client.TrafficSample]
	trafficNames []string
	trafficSeq   uint64
	trafficSet   bool
}

// NewState returns an empty State where every panel is loading.
func NewState() *State {
	return &State{traffic: make(map[string]*resource.Resource[[]client.TrafficSample])}
}

// Reset returns every panel to loading, e.g. after a device or page change.
func (s *State) Reset() {
	*s = *NewState()
}

// Apply records the snapshot of fetch cycle seq. Results older than what a
// panel already shows are dropped per resource.
func (s *State) Apply(seq uint64, snap Snapshot) {
	apply(&s.Device, seq, snap.Device)
	apply(&s.System, seq, snap.System)
	apply(&s.History, seq, snap.History)
	apply(&s.Interfaces, seq, snap.Interfaces)
	apply(&s.Alerts, seq, snap.Alerts)
	apply(&s.Logs, seq, snap.Logs)
	apply(&s.IPAddresses, seq, snap.IPAddresses)
	apply(&s.ARP, seq, snap.ARP)
	apply(&s.DHCP, seq, snap.DHCP)
	apply(&s.Firewall, seq, snap.Firewall)
	apply(&s.Wireless, seq, snap.Wireless)
	apply(&s.Capsman, seq, snap.Capsman)

	if snap.Interfaces != nil && snap.Interfaces.Available() {
		s.applyTraffic(seq, snap.Traffic)
	}
}

func apply[T any](r *resource.Resource[T], seq uint64, res *resource.Result[T]) {
	if res != nil {
		r.Apply(seq, *res)
	}
}

func (s *State) applyTraffic(seq uint64, traffic []Traffic) {
	if s.trafficSet && seq < s.trafficSeq {
		return
	}
	s.trafficSeq, s.trafficSet = seq, true

	next := make(map[string]*resource.Resource[[]client.TrafficSample], len(traffic))
	s.trafficNames = s.trafficNames[:0]
	for _, t := range traffic {
		r, ok := s.traffic[t.Name]
		if !ok {
			r = &resource.Resource[[]client.TrafficSample]{}
		}
		r.Apply(seq, t.Result)
		next[t.Name] = r
		s.trafficNames = append(s.trafficNames, t.Name)
	}
	s.traffic = next
}

// TrafficNames lists the interfaces whose traffic is shown, in order.
func (s *State) TrafficNames() []string {
	return append([]string(nil), s.trafficNames...)
}

// Panels renders the panels of page from the current state.
func (s *State) Panels(page Page, opts PanelOptions, now time.Time) []view.Panel {
	switch page {
	case PageDashboard:
		panels := []view.Panel{view.DevicePanel(&s.Device, now), view.SystemPanel(&s.System)}
		if p, ok := view.HistoryPanel(&s.History); ok {
			panels = append(panels, p)
		}
		panels = append(panels, view.InterfacesPanel(&s.Interfaces, false))
		panels = append(panels, s.trafficPanels("No active interfaces available for traffic charts")...)
		return append(panels, view.AlertsSummaryPanel(&s.Alerts, now))
	case PageSystem:
		panels := []view.Panel{view.SystemPanel(&s.System)}
		if p, ok := view.HistoryPanel(&s.History); ok {
			panels = append(panels, p)
		}
		return panels
	case PageInterfaces:
		panels := []view.Panel{view.InterfacesPanel(&s.Interfaces, true)}
		return append(panels, s.trafficPanels("No active interfaces found")...)
	case PageAlerts:
		return []view.Panel{view.AlertsTablePanel(&s.Alerts, opts.AlertFilter, now)}
	case PageLogs:
		return []view.Panel{view.LogsPanel(&s.Logs, opts.LogFilter), view.TopicsPanel(&s.Logs)}
	case PageAddresses:
		return []view.Panel{view.IPAddressesPanel(&s.IPAddresses), view.ARPPanel(&s.ARP)}
	case PageServices:
		return []view.Panel{
			view.DHCPPanel(&s.DHCP),
			view.FirewallPanel(&s.Firewall),
			view.WirelessPanel(&s.Wireless),
			view.CapsmanPanel(&s.Capsman),
		}
	}
	return nil
}

// trafficPanels renders one panel per shown interface. Before the interface
// list has loaded there is nothing to show; once it has, an empty selection
// becomes a placeholder panel.
func (s *State) trafficPanels(emptyMsg string) []view.Panel {
	if !s.trafficSet {
		return nil
	}
	if len(s.trafficNames) == 0 {
		return []view.Panel{{ID: "traffic", Title: "Interface Traffic", Empty: emptyMsg}}
	}
	panels := make([]view.Panel, 0, len(s.trafficNames))
	for _, name := range s.trafficNames {
		panels = append(panels, view.TrafficPanel(name, s.traffic[name]))
	}
	return panels
}
