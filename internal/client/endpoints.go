// ABOUTME: One method per backend endpoint
// ABOUTME: Unwraps the JSON envelopes returned by the /api routes

package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Devices calls GET /api/devices
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	var resp struct {
		Devices []Device `json:"devices"`
	}
	if err := c.getJSON(ctx, "/api/devices", &resp); err != nil {
		return nil, err
	}
	return resp.Devices, nil
}

// System calls GET /api/system/{deviceId}
func (c *Client) System(ctx context.Context, deviceID string) (*SystemResources, error) {
	var resp struct {
		Resources *SystemResources `json:"resources"`
	}
	if err := c.getJSON(ctx, "/api/system/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	if resp.Resources == nil {
		return nil, fmt.Errorf("invalid response from backend: missing resources")
	}
	return resp.Resources, nil
}

// SystemHistory calls GET /api/system/history/{deviceId}
func (c *Client) SystemHistory(ctx context.Context, deviceID string) ([]ResourceSample, error) {
	var resp struct {
		History []ResourceSample `json:"history"`
	}
	if err := c.getJSON(ctx, "/api/system/history/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// Interfaces calls GET /api/interfaces/{deviceId}
func (c *Client) Interfaces(ctx context.Context, deviceID string) ([]Interface, error) {
	var resp struct {
		Interfaces []Interface `json:"interfaces"`
	}
	if err := c.getJSON(ctx, "/api/interfaces/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.Interfaces, nil
}

// InterfaceHistory calls GET /api/interfaces/history/{deviceId}/{name}
func (c *Client) InterfaceHistory(ctx context.Context, deviceID, name string) ([]TrafficSample, error) {
	var resp struct {
		History []TrafficSample `json:"history"`
	}
	path := "/api/interfaces/history/" + url.PathEscape(deviceID) + "/" + url.PathEscape(name)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// Alerts calls GET /api/alerts, scoped to deviceID when it is not empty.
//
// The resolve endpoint addresses alerts without a backend id by their
// position in the unscoped list. When the scoped response lacks ids the
// unscoped list is fetched instead, numbered, then filtered by device.
func (c *Client) Alerts(ctx context.Context, deviceID string) ([]Alert, error) {
	if deviceID != "" {
		alerts, err := c.fetchAlerts(ctx, "/api/alerts?device_id="+url.QueryEscape(deviceID))
		if err != nil {
			return nil, err
		}
		if hasIDs(alerts) {
			return alerts, nil
		}
	}

	all, err := c.fetchAlerts(ctx, "/api/alerts")
	if err != nil {
		return nil, err
	}
	alerts := make([]Alert, 0, len(all))
	for i, a := range all {
		if a.ID == "" {
			a.ID = ID(strconv.Itoa(i))
		}
		if deviceID == "" || a.DeviceID == deviceID {
			alerts = append(alerts, a)
		}
	}
	return alerts, nil
}

func (c *Client) fetchAlerts(ctx context.Context, path string) ([]Alert, error) {
	var resp struct {
		Alerts []Alert `json:"alerts"`
	}
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Alerts, nil
}

func hasIDs(alerts []Alert) bool {
	for _, a := range alerts {
		if a.ID == "" {
			return false
		}
	}
	return true
}

// ResolveAlert calls POST /api/alerts/{alertId}/resolve
func (c *Client) ResolveAlert(ctx context.Context, alertID ID) (*ActionResult, error) {
	var result ActionResult
	if err := c.postJSON(ctx, "/api/alerts/"+url.PathEscape(string(alertID))+"/resolve", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Refresh calls POST /api/refresh/{deviceId}, asking the backend to re-poll the router
func (c *Client) Refresh(ctx context.Context, deviceID string) (*ActionResult, error) {
	var result ActionResult
	if err := c.postJSON(ctx, "/api/refresh/"+url.PathEscape(deviceID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logs calls GET /api/logs/{deviceId}
func (c *Client) Logs(ctx context.Context, deviceID string) ([]LogEntry, error) {
	var resp struct {
		Logs []LogEntry `json:"logs"`
	}
	if err := c.getJSON(ctx, "/api/logs/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

// IPAddresses calls GET /api/ip/{deviceId}
func (c *Client) IPAddresses(ctx context.Context, deviceID string) ([]IPAddress, error) {
	var resp struct {
		Addresses []IPAddress `json:"addresses"`
	}
	if err := c.getJSON(ctx, "/api/ip/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

// ARP calls GET /api/arp/{deviceId}
func (c *Client) ARP(ctx context.Context, deviceID string) ([]ARPEntry, error) {
	var resp struct {
		Entries []ARPEntry `json:"entries"`
	}
	if err := c.getJSON(ctx, "/api/arp/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// DHCPLeases calls GET /api/dhcp/{deviceId}
func (c *Client) DHCPLeases(ctx context.Context, deviceID string) ([]DHCPLease, error) {
	var resp struct {
		Leases []DHCPLease `json:"leases"`
	}
	if err := c.getJSON(ctx, "/api/dhcp/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.Leases, nil
}

// FirewallRules calls GET /api/firewall/{deviceId}
func (c *Client) FirewallRules(ctx context.Context, deviceID string) ([]FirewallRule, error) {
	var resp struct {
		Rules []FirewallRule `json:"rules"`
	}
	if err := c.getJSON(ctx, "/api/firewall/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.Rules, nil
}

// WirelessClients calls GET /api/wireless/{deviceId}
func (c *Client) WirelessClients(ctx context.Context, deviceID string) ([]WirelessClient, error) {
	var resp struct {
		Clients []WirelessClient `json:"clients"`
	}
	if err := c.getJSON(ctx, "/api/wireless/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.Clients, nil
}

// CapsmanRegistrations calls GET /api/capsman/{deviceId}
func (c *Client) CapsmanRegistrations(ctx context.Context, deviceID string) ([]CapsmanRegistration, error) {
	var resp struct {
		Registrations []CapsmanRegistration `json:"registrations"`
	}
	if err := c.getJSON(ctx, "/api/capsman/"+url.PathEscape(deviceID), &resp); err != nil {
		return nil, err
	}
	return resp.Registrations, nil
}
