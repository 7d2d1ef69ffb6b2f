// ABOUTME: Tests for the monitoring backend API client
// ABOUTME: Uses httptest to mock backend responses

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestDevices_Success(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/devices", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(w, http.StatusOK, map[string]any{
			"devices": []map[string]any{
				{"id": "1", "name": "core", "host": "10.0.0.1", "port": 8728, "enabled": true, "last_connected": "2024-05-01T10:00:00", "error": nil},
				{"id": "2", "name": "ap", "host": "10.0.0.2", "port": 8728, "enabled": true, "last_connected": nil, "error": "timeout"},
			},
		})
	})

	devices, err := c.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "core", devices[0].Name)
	assert.True(t, devices[0].Connected())
	assert.False(t, devices[1].Connected())
	assert.Equal(t, "timeout", devices[1].Error)
}

func TestSystem_Success(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system/7", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"resources": SystemResources{DeviceID: "7", Uptime: "1d2h", CPULoad: 12, TotalMemory: 1024, FreeMemory: 256},
		})
	})

	res, err := c.System(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "1d2h", res.Uptime)
	assert.Equal(t, int64(1024), res.TotalMemory)
}

func TestSystem_MissingEnvelope(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	_, err := c.System(context.Background(), "7")
	assert.ErrorContains(t, err, "missing resources")
}

func TestNotFound_IsUnsupported(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "CAPsMAN registrations not available for this device"})
	})

	_, err := c.CapsmanRegistrations(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
	assert.Contains(t, err.Error(), "not supported by this device")
}

func TestServerError_CarriesBackendMessage(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "router unreachable"})
	})

	_, err := c.Interfaces(context.Background(), "1")
	require.Error(t, err)
	assert.False(t, IsUnsupported(err))
	assert.Equal(t, "backend error: router unreachable", err.Error())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestServerError_WithoutBody(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Logs(context.Background(), "1")
	assert.EqualError(t, err, "backend returned status 502")
}

func TestInvalidJSON(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := c.ARP(context.Background(), "1")
	assert.ErrorContains(t, err, "invalid response from backend")
}

func TestConnectionError(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Devices(context.Background())
	assert.ErrorContains(t, err, "cannot connect to backend")
}

func TestContextCancellation(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		writeJSON(w, http.StatusOK, map[string]any{"devices": []Device{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Devices(ctx)
	assert.EqualError(t, err, "request canceled")
}

func TestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := New(server.URL, WithTimeout(20*time.Millisecond))
	_, err := c.Devices(context.Background())
	assert.EqualError(t, err, "request timed out")
}

func TestAlerts_BackendIDsUseScopedRequest(t *testing.T) {
	var calls atomic.Int32
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/alerts", r.URL.Path)
		assert.Equal(t, "dev 1", r.URL.Query().Get("device_id"))
		writeJSON(w, http.StatusOK, map[string]any{
			"alerts": []map[string]any{
				{"id": 42, "device_id": "dev 1", "type": "link", "severity": "info", "active": true},
				{"id": "abc", "device_id": "dev 1", "type": "disk", "severity": "info", "active": true},
			},
		})
	})

	alerts, err := c.Alerts(context.Background(), "dev 1")
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, ID("42"), alerts[0].ID)
	assert.Equal(t, ID("abc"), alerts[1].ID)
	assert.Equal(t, int32(1), calls.Load())
}

// twoDeviceAlerts serves an alert list without ids, resolved by global
// position, and honours ?device_id= filtering.
func twoDeviceAlerts(t *testing.T) *Client {
	t.Helper()
	var mu sync.Mutex
	global := []map[string]any{
		{"device_id": "a", "type": "cpu", "severity": "warning", "active": true},
		{"device_id": "b", "type": "memory", "severity": "critical", "active": true},
		{"device_id": "a", "type": "disk", "severity": "info", "active": false},
		{"device_id": "b", "type": "link", "severity": "info", "active": true},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/alerts", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		device := r.URL.Query().Get("device_id")
		out := []map[string]any{}
		for _, a := range global {
			if device == "" || a["device_id"] == device {
				out = append(out, a)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"alerts": out})
	})
	mux.HandleFunc("POST /api/alerts/{id}/resolve", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		i, err := strconv.Atoi(r.PathValue("id"))
		if err != nil || i < 0 || i >= len(global) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Alert not found"})
			return
		}
		global[i]["active"] = false
		writeJSON(w, http.StatusOK, ActionResult{Success: true})
	})
	return newBackend(t, mux.ServeHTTP)
}

func TestAlerts_MissingIDsUseGlobalPositions(t *testing.T) {
	c := twoDeviceAlerts(t)

	alerts, err := c.Alerts(context.Background(), "b")
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, ID("1"), alerts[0].ID)
	assert.Equal(t, ID("3"), alerts[1].ID)
	for _, a := range alerts {
		assert.Equal(t, "b", a.DeviceID)
	}
}

func TestAlerts_ResolveTargetsScopedDevice(t *testing.T) {
	c := twoDeviceAlerts(t)
	ctx := context.Background()

	alerts, err := c.Alerts(ctx, "b")
	require.NoError(t, err)
	require.NotEmpty(t, alerts)

	result, err := c.ResolveAlert(ctx, alerts[0].ID)
	require.NoError(t, err)
	assert.True(t, result.Success)

	after, err := c.Alerts(ctx, "b")
	require.NoError(t, err)
	assert.False(t, after[0].Active, "resolved alert of device b is still active")

	others, err := c.Alerts(ctx, "a")
	require.NoError(t, err)
	assert.True(t, others[0].Active, "alert of device a was resolved")
}

func TestAlerts_Unscoped(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(w, http.StatusOK, map[string]any{"alerts": []Alert{}})
	})

	alerts, err := c.Alerts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestResolveAlert(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/alerts/3/resolve", r.URL.Path)
		writeJSON(w, http.StatusOK, ActionResult{Success: true})
	})

	result, err := c.ResolveAlert(context.Background(), "3")
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestResolveAlert_NotFound(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Alert not found"})
	})

	_, err := c.ResolveAlert(context.Background(), "99")
	assert.ErrorContains(t, err, "Alert not found")
}

func TestRefresh_PartialResults(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/refresh/1", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"results": map[string]bool{"system": true, "capsman": false},
		})
	})

	result, err := c.Refresh(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, map[string]bool{"system": true, "capsman": false}, result.Results)
}

func TestInterfaceHistory_EscapesName(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/interfaces/history/1/vlan%2010", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, map[string]any{
			"history": []TrafficSample{{Timestamp: "2024-05-01T10:00:00", RxSpeed: 100, TxSpeed: 50}},
		})
	})

	history, err := c.InterfaceHistory(context.Background(), "1", "vlan 10")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 100.0, history[0].RxSpeed)
}

func TestServiceTables(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/ip/1":
			writeJSON(w, http.StatusOK, map[string]any{"addresses": []IPAddress{{Address: "10.0.0.1/24", Interface: "bridge"}}})
		case "/api/dhcp/1":
			writeJSON(w, http.StatusOK, map[string]any{"leases": []DHCPLease{{Address: "10.0.0.50", Hostname: "laptop"}}})
		case "/api/firewall/1":
			writeJSON(w, http.StatusOK, map[string]any{"rules": []FirewallRule{{Chain: "input", Action: "drop"}}})
		case "/api/wireless/1":
			writeJSON(w, http.StatusOK, map[string]any{"clients": []WirelessClient{{MACAddress: "AA:BB", SignalStrength: -60}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	addrs, err := c.IPAddresses(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "bridge", addrs[0].Interface)

	leases, err := c.DHCPLeases(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "laptop", leases[0].Hostname)

	rules, err := c.FirewallRules(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "drop", rules[0].Action)

	clients, err := c.WirelessClients(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, -60, clients[0].SignalStrength)

	_, err = c.SystemHistory(ctx, "1")
	assert.True(t, IsUnsupported(err))
}

func TestRequestIDHeader(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Len(t, r.Header.Get("X-Request-ID"), 36)
		writeJSON(w, http.StatusOK, map[string]any{"devices": []Device{}})
	})

	_, err := c.Devices(context.Background())
	require.NoError(t, err)
}

func TestProxyTransport_RequiresPrivateKey(t *testing.T) {
	_, err := ProxyTransport("ssh+socks5://jump@bastion:22")
	assert.ErrorContains(t, err, "private-key")
}

func TestProxyTransport_MissingKeyFile(t *testing.T) {
	_, err := ProxyTransport("ssh+socks5://jump@bastion:22?private-key=/nonexistent/id_rsa")
	assert.ErrorContains(t, err, "failed to read SSH private key")
}
