// ABOUTME: Per-page fetch of every backend resource a page displays
// ABOUTME: Fetches of one page run concurrently and each settles into its own Result

package monitor

import (
	"context"
	"errors"
	"sort"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/poll"
	"github.com/mikrodash/mikrodash/internal/resource"
	"github.com/mikrodash/mikrodash/internal/session"
	"github.com/mikrodash/mikrodash/internal/view"
)

// ErrDeviceNotFound is the device panel's failure when the backend does not
// list the selected device.
var ErrDeviceNotFound = errors.New("device not found")

// Traffic is the history of one interface.
type Traffic struct {
	Name   string
	Result resource.Result[[]client.TrafficSample]
}

// Snapshot holds the results of one fetch cycle of a page. A nil field is
// not part of the page. Traffic is only meaningful when Interfaces is OK.
type Snapshot struct {
	Page     Page
	DeviceID string

	Device      *resource.Result[client.Device]
	System      *resource.Result[client.SystemResources]
	History     *resource.Result[[]client.ResourceSample]
	Interfaces  *resource.Result[[]client.Interface]
	Traffic     []Traffic
	Alerts      *resource.Result[[]client.Alert]
	Logs        *resource.Result[[]client.LogEntry]
	IPAddresses *resource.Result[[]client.IPAddress]
	ARP         *resource.Result[[]client.ARPEntry]
	DHCP        *resource.Result[[]client.DHCPLease]
	Firewall    *resource.Result[[]client.FirewallRule]
	Wireless    *resource.Result[[]client.WirelessClient]
	Capsman     *resource.Result[[]client.CapsmanRegistration]
}

// LoadOptions carries page-local selections that change what is fetched.
type LoadOptions struct {
	// Interface is the interface whose traffic the interfaces page shows.
	// Empty picks the first running interface.
	Interface string
}

// Loader fetches page snapshots from the backend.
type Loader struct {
	api API
}

// NewLoader creates a Loader over api.
func NewLoader(api API) *Loader {
	return &Loader{api: api}
}

// Load fetches every resource of page for deviceID. It never fails: each
// resource settles independently into OK or Unavailable.
func (l *Loader) Load(ctx context.Context, page Page, deviceID string, opts LoadOptions) Snapshot {
	snap := Snapshot{Page: page, DeviceID: deviceID}

	switch page {
	case PageDashboard:
		poll.Settle(ctx,
			l.device(&snap.Device, deviceID),
			fetchInto(&snap.System, "system", l.system(deviceID)),
			fetchInto(&snap.History, "system history", bind(l.api.SystemHistory, deviceID)),
			func(ctx context.Context) {
				snap.Interfaces, snap.Traffic = l.interfacesWithTraffic(ctx, deviceID, func(ifaces []client.Interface) []string {
					return names(view.TopInterfaces(ifaces, view.TopInterfaceCount))
				})
			},
			fetchInto(&snap.Alerts, "alerts", bind(l.api.Alerts, deviceID)),
		)
	case PageSystem:
		poll.Settle(ctx,
			fetchInto(&snap.System, "system", l.system(deviceID)),
			fetchInto(&snap.History, "system history", bind(l.api.SystemHistory, deviceID)),
		)
	case PageInterfaces:
		snap.Interfaces, snap.Traffic = l.interfacesWithTraffic(ctx, deviceID, func(ifaces []client.Interface) []string {
			if name := pickInterface(ifaces, opts.Interface); name != "" {
				return []string{name}
			}
			return nil
		})
	case PageAlerts:
		poll.Settle(ctx, fetchInto(&snap.Alerts, "alerts", bind(l.api.Alerts, deviceID)))
	case PageLogs:
		poll.Settle(ctx, fetchInto(&snap.Logs, "logs", bind(l.api.Logs, deviceID)))
	case PageAddresses:
		poll.Settle(ctx,
			fetchInto(&snap.IPAddresses, "ip addresses", bind(l.api.IPAddresses, deviceID)),
			fetchInto(&snap.ARP, "arp", bind(l.api.ARP, deviceID)),
		)
	case PageServices:
		poll.Settle(ctx,
			fetchInto(&snap.DHCP, "dhcp", bind(l.api.DHCPLeases, deviceID)),
			fetchInto(&snap.Firewall, "firewall", bind(l.api.FirewallRules, deviceID)),
			fetchInto(&snap.Wireless, "wireless", bind(l.api.WirelessClients, deviceID)),
			fetchInto(&snap.Capsman, "capsman", bind(l.api.CapsmanRegistrations, deviceID)),
		)
	}
	return snap
}

// interfacesWithTraffic fetches the interface list, then the traffic of the
// interfaces chosen by pick, concurrently.
func (l *Loader) interfacesWithTraffic(ctx context.Context, deviceID string, pick func([]client.Interface) []string) (*resource.Result[[]client.Interface], []Traffic) {
	ifaces := resource.Fetch(ctx, "interfaces", bind(l.api.Interfaces, deviceID))
	if !ifaces.Available() {
		return &ifaces, nil
	}

	selected := pick(ifaces.Data)
	traffic := make([]Traffic, len(selected))
	tasks := make([]poll.Task, len(selected))
	for i, name := range selected {
		traffic[i].Name = name
		tasks[i] = func(ctx context.Context) {
			traffic[i].Result = resource.Fetch(ctx, "traffic "+name, func(ctx context.Context) ([]client.TrafficSample, error) {
				return l.api.InterfaceHistory(ctx, deviceID, name)
			})
		}
	}
	poll.Settle(ctx, tasks...)
	return &ifaces, traffic
}

func (l *Loader) device(dst **resource.Result[client.Device], deviceID string) poll.Task {
	return fetchInto(dst, "device", func(ctx context.Context) (client.Device, error) {
		devices, err := l.api.Devices(ctx)
		if err != nil {
			return client.Device{}, err
		}
		d, ok := session.FindDevice(devices, deviceID)
		if !ok {
			return client.Device{}, ErrDeviceNotFound
		}
		return d, nil
	})
}

func (l *Loader) system(deviceID string) func(context.Context) (client.SystemResources, error) {
	return func(ctx context.Context) (client.SystemResources, error) {
		res, err := l.api.System(ctx, deviceID)
		if err != nil {
			return client.SystemResources{}, err
		}
		return *res, nil
	}
}

func fetchInto[T any](dst **resource.Result[T], name string, fn func(context.Context) (T, error)) poll.Task {
	return func(ctx context.Context) {
		res := resource.Fetch(ctx, name, fn)
		*dst = &res
	}
}

func bind[T any](fn func(context.Context, string) (T, error), deviceID string) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return fn(ctx, deviceID)
	}
}

// pickInterface returns want when it exists, else the first running
// interface by name, else "".
func pickInterface(ifaces []client.Interface, want string) string {
	sorted := view.SortInterfaces(ifaces)
	for _, iface := range sorted {
		if want != "" && iface.Name == want {
			return want
		}
	}
	for _, iface := range sorted {
		if iface.Running && !iface.Disabled {
			return iface.Name
		}
	}
	return ""
}

func names(ifaces []client.Interface) []string {
	out := make([]string, len(ifaces))
	for i, iface := range ifaces {
		out[i] = iface.Name
	}
	return out
}

// RunningInterfaces lists running interface names in display order.
func RunningInterfaces(ifaces []client.Interface) []string {
	var out []string
	for _, iface := range ifaces {
		if iface.Running && !iface.Disabled {
			out = append(out, iface.Name)
		}
	}
	sort.Strings(out)
	return out
}
