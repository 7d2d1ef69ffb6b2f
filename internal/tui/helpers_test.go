package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/monitor"
)

var errUnsupported = &client.APIError{StatusCode: 404}

// fakeAPI serves canned data and records actions.
type fakeAPI struct {
	mu       sync.Mutex
	devices  []client.Device
	alerts   []client.Alert
	resolved []client.ID
	refresh  *client.ActionResult
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		devices: []client.Device{
			{ID: "r1", Name: "core", Host: "10.0.0.1", Port: 8728, Enabled: true, LastConnected: "2026-10-18T10:00:00Z"},
			{ID: "r2", Name: "edge", Host: "10.0.0.2", Port: 8728, Enabled: true},
		},
		alerts: []client.Alert{
			{ID: "1", Severity: "critical", Type: "cpu", Message: "CPU high", Active: true, Created: "2026-10-18T09:00:00Z"},
			{ID: "2", Severity: "warning", Type: "link", Message: "ether2 down", Active: false, Created: "2026-10-18T08:00:00Z"},
		},
		refresh: &client.ActionResult{Success: true},
	}
}

func (f *fakeAPI) Devices(context.Context) ([]client.Device, error) {
	return f.devices, nil
}

func (f *fakeAPI) System(context.Context, string) (*client.SystemResources, error) {
	return &client.SystemResources{BoardName: "RB4011", CPULoad: 12, TotalMemory: 1024, FreeMemory: 512}, nil
}

func (f *fakeAPI) SystemHistory(context.Context, string) ([]client.ResourceSample, error) {
	return nil, errUnsupported
}

func (f *fakeAPI) Interfaces(context.Context, string) ([]client.Interface, error) {
	return []client.Interface{
		{Name: "ether1", Type: "ether", Running: true, RxSpeed: 2000},
		{Name: "ether2", Type: "ether", Running: true, RxSpeed: 1000},
	}, nil
}

func (f *fakeAPI) InterfaceHistory(_ context.Context, _, name string) ([]client.TrafficSample, error) {
	return []client.TrafficSample{{RxSpeed: 1}, {RxSpeed: 2}}, nil
}

func (f *fakeAPI) Alerts(context.Context, string) ([]client.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]client.Alert(nil), f.alerts...), nil
}

func (f *fakeAPI) ResolveAlert(_ context.Context, id client.ID) (*client.ActionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved = append(f.resolved, id)
	for i := range f.alerts {
		if f.alerts[i].ID == id {
			f.alerts[i].Active = false
		}
	}
	return &client.ActionResult{Success: true}, nil
}

func (f *fakeAPI) Refresh(context.Context, string) (*client.ActionResult, error) {
	return f.refresh, nil
}

func (f *fakeAPI) Logs(context.Context, string) ([]client.LogEntry, error) {
	return []client.LogEntry{
		{Time: "10:00:00", Topics: "dhcp,info", Message: "lease assigned"},
		{Time: "10:00:01", Topics: "system,error", Message: "login failure"},
	}, nil
}

func (f *fakeAPI) IPAddresses(context.Context, string) ([]client.IPAddress, error) {
	return nil, nil
}

func (f *fakeAPI) ARP(context.Context, string) ([]client.ARPEntry, error) {
	return nil, nil
}

func (f *fakeAPI) DHCPLeases(context.Context, string) ([]client.DHCPLease, error) {
	return nil, errUnsupported
}

func (f *fakeAPI) FirewallRules(context.Context, string) ([]client.FirewallRule, error) {
	return nil, nil
}

func (f *fakeAPI) WirelessClients(context.Context, string) ([]client.WirelessClient, error) {
	return nil, errUnsupported
}

func (f *fakeAPI) CapsmanRegistrations(context.Context, string) ([]client.CapsmanRegistration, error) {
	return nil, errors.New("connection refused")
}

func newTestApp(t *testing.T, api monitor.API) *App {
	t.Helper()
	app := New(context.Background(), Options{API: api})
	t.Cleanup(func() {
		app.ctrl.Stop()
		app.cancel()
	})
	return app
}

// nextCycle waits for the next fetch cycle and feeds it to the app.
func nextCycle(t *testing.T, app *App) {
	t.Helper()
	select {
	case msg := <-app.cycles:
		app.Update(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a fetch cycle")
	}
}

// run executes cmd and feeds its message back to the app.
func run(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	app.Update(cmd())
}
