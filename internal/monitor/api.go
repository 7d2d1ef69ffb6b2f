// ABOUTME: Backend operations the monitor needs, satisfied by *client.Client
// ABOUTME: Kept as an interface so page loaders and actions can be tested with gomock

package monitor

import (
	"context"

	"github.com/mikrodash/mikrodash/internal/client"
)

//go:generate mockgen -destination=mock_api.go -package=monitor github.com/mikrodash/mikrodash/internal/monitor API

// API is the monitoring backend.
type API interface {
	Devices(ctx context.Context) ([]client.Device, error)
	System(ctx context.Context, deviceID string) (*client.SystemResources, error)
	SystemHistory(ctx context.Context, deviceID string) ([]client.ResourceSample, error)
	Interfaces(ctx context.Context, deviceID string) ([]client.Interface, error)
	InterfaceHistory(ctx context.Context, deviceID, name string) ([]client.TrafficSample, error)
	Alerts(ctx context.Context, deviceID string) ([]client.Alert, error)
	ResolveAlert(ctx context.Context, alertID client.ID) (*client.ActionResult, error)
	Refresh(ctx context.Context, deviceID string) (*client.ActionResult, error)
	Logs(ctx context.Context, deviceID string) ([]client.LogEntry, error)
	IPAddresses(ctx context.Context, deviceID string) ([]client.IPAddress, error)
	ARP(ctx context.Context, deviceID string) ([]client.ARPEntry, error)
	DHCPLeases(ctx context.Context, deviceID string) ([]client.DHCPLease, error)
	FirewallRules(ctx context.Context, deviceID string) ([]client.FirewallRule, error)
	WirelessClients(ctx context.Context, deviceID string) ([]client.WirelessClient, error)
	CapsmanRegistrations(ctx context.Context, deviceID string) ([]client.CapsmanRegistration, error)
}

var _ API = (*client.Client)(nil)
