package monitor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/resource"
	"github.com/mikrodash/mikrodash/internal/view"
)

func ok[T any](v T) *resource.Result[T] {
	r := resource.OK(v)
	return &r
}

func failed[T any](msg string) *resource.Result[T] {
	r := resource.Unavailable[T](errors.New(msg))
	return &r
}

func panelIDs(panels []view.Panel) []string {
	ids := make([]string, len(panels))
	for i, p := range panels {
		ids[i] = p.ID
	}
	return ids
}

func TestState_PanelsLoadingBeforeFirstCycle(t *testing.T) {
	s := NewState()
	panels := s.Panels(PageDashboard, PanelOptions{}, time.Now())

	assert.Equal(t, []string{"device", "system", "interfaces", "alerts"}, panelIDs(panels))
	for _, p := range panels {
		assert.True(t, p.Loading, p.ID)
	}
}

func TestState_DashboardAppendsHistoryAndTraffic(t *testing.T) {
	s := NewState()
	s.Apply(1, Snapshot{
		Device:     ok(client.Device{ID: "1"}),
		System:     ok(client.SystemResources{}),
		History:    ok([]client.ResourceSample{{CPULoad: 5}}),
		Interfaces: ok([]client.Interface{{Name: "ether1"}}),
		Traffic:    []Traffic{{Name: "ether1", Result: resource.OK([]client.TrafficSample{{RxSpeed: 1}})}},
		Alerts:     ok([]client.Alert{}),
	})

	panels := s.Panels(PageDashboard, PanelOptions{}, time.Now())
	assert.Equal(t, []string{"device", "system", "history", "interfaces", "traffic:ether1", "alerts"}, panelIDs(panels))
}

func TestState_NoTopInterfacesShowsPlaceholder(t *testing.T) {
	s := NewState()
	s.Apply(1, Snapshot{Interfaces: ok([]client.Interface{}), Traffic: nil})

	panels := s.Panels(PageInterfaces, PanelOptions{}, time.Now())
	require.Len(t, panels, 2)
	assert.Equal(t, "No active interfaces found", panels[1].Empty)
}

func TestState_StaleCycleIsDropped(t *testing.T) {
	s := NewState()
	s.Apply(2, Snapshot{Alerts: ok([]client.Alert{{ID: "new"}})})
	s.Apply(1, Snapshot{Alerts: ok([]client.Alert{{ID: "old"}})})

	alerts, _ := s.Alerts.Data()
	assert.Equal(t, client.ID("new"), alerts[0].ID)

	s.Apply(3, Snapshot{
		Interfaces: ok([]client.Interface{{Name: "a"}}),
		Traffic:    []Traffic{{Name: "a", Result: resource.OK([]client.TrafficSample{})}},
	})
	s.Apply(2, Snapshot{
		Interfaces: ok([]client.Interface{{Name: "b"}}),
		Traffic:    []Traffic{{Name: "b", Result: resource.OK([]client.TrafficSample{})}},
	})
	assert.Equal(t, []string{"a"}, s.TrafficNames())
}

func TestState_FailureKeepsLastGoodData(t *testing.T) {
	s := NewState()
	s.Apply(1, Snapshot{Logs: ok([]client.LogEntry{{Topics: "system", Message: "hello"}})})
	s.Apply(2, Snapshot{Logs: failed[[]client.LogEntry]("timeout")})

	panels := s.Panels(PageLogs, PanelOptions{}, time.Now())
	require.Len(t, panels, 2)
	assert.Equal(t, "Logs not available: timeout", panels[0].Warning)
	require.NotNil(t, panels[0].Table)
	assert.Len(t, panels[0].Table.Rows, 1)
}

func TestState_InterfacesFailureKeepsTraffic(t *testing.T) {
	s := NewState()
	s.Apply(1, Snapshot{
		Interfaces: ok([]client.Interface{{Name: "a"}}),
		Traffic:    []Traffic{{Name: "a", Result: resource.OK([]client.TrafficSample{{RxSpeed: 1}})}},
	})
	s.Apply(2, Snapshot{Interfaces: failed[[]client.Interface]("down")})

	assert.Equal(t, []string{"a"}, s.TrafficNames())
}

func TestState_ResetReturnsToLoading(t *testing.T) {
	s := NewState()
	s.Apply(1, Snapshot{IPAddresses: ok([]client.IPAddress{}), ARP: ok([]client.ARPEntry{})})
	s.Reset()

	for _, p := range s.Panels(PageAddresses, PanelOptions{}, time.Now()) {
		assert.True(t, p.Loading)
	}
	assert.Empty(t, s.TrafficNames())
}

func TestState_FiltersApplyAtRenderTime(t *testing.T) {
	s := NewState()
	s.Apply(1, Snapshot{Alerts: ok([]client.Alert{
		{ID: "1", Active: true, Severity: "critical"},
		{ID: "2", Active: false, Severity: "info"},
	})})

	panels := s.Panels(PageAlerts, PanelOptions{AlertFilter: view.AlertFilter{Status: view.StatusResolved}}, time.Now())
	require.Len(t, panels, 1)
	require.NotNil(t, panels[0].Table)
	assert.Len(t, panels[0].Table.Rows, 1)
	assert.Equal(t, "2", panels[0].Table.Rows[0][0].Text)
}

func TestState_ServicesPanels(t *testing.T) {
	s := NewState()
	s.Apply(1, Snapshot{
		DHCP:     ok([]client.DHCPLease{}),
		Firewall: ok([]client.FirewallRule{{Chain: "input"}}),
		Wireless: failed[[]client.WirelessClient]("not supported by this device"),
		Capsman:  failed[[]client.CapsmanRegistration]("not supported by this device"),
	})

	panels := s.Panels(PageServices, PanelOptions{}, time.Now())
	assert.Equal(t, []string{"dhcp", "firewall", "wireless", "capsman"}, panelIDs(panels))
	assert.Equal(t, "No DHCP leases found", panels[0].Empty)
	assert.True(t, panels[1].HasContent())
	assert.Contains(t, panels[2].Warning, "Wireless clients not available")
	assert.Contains(t, panels[3].Warning, "may not be supported")
}
