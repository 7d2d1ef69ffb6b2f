// ABOUTME: Test helpers for cmd tests
// ABOUTME: Serves a fake monitoring backend and resets global flags between tests

package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mikrodash/mikrodash/internal/client"
)

// fakeBackend is an in-memory monitoring backend.
type fakeBackend struct {
	mu sync.Mutex

	devices      []client.Device
	alerts       []client.Alert
	failAlerts   bool
	rejectAlerts map[string]string // alert id -> error text
	resolved     []string
	refresh      client.ActionResult
	refreshCode  int
	refreshCalls []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		devices: []client.Device{
			{ID: "r1", Name: "core", Host: "10.0.0.1", Port: 8728, Enabled: true, LastConnected: "2026-10-18T10:00:00Z"},
			{ID: "r2", Name: "edge", Host: "10.0.0.2", Port: 8728, Enabled: true, Error: "timeout"},
		},
		alerts: []client.Alert{
			{ID: "1", DeviceID: "r1", Type: "cpu", Message: "CPU high", Severity: "critical", Created: "2026-10-18T09:00:00Z", Active: true},
			{ID: "2", DeviceID: "r1", Type: "disk", Message: "Disk almost full", Severity: "warning", Created: "2026-10-17T09:00:00Z", Resolved: true, ResolvedTime: "2026-10-17T12:00:00Z"},
		},
		rejectAlerts: map[string]string{},
		refresh:      client.ActionResult{Success: true},
		refreshCode:  http.StatusOK,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not supported"})
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/devices", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"devices": b.devices})
	})
	mux.HandleFunc("GET /api/system/history/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"history": []client.ResourceSample{
			{Timestamp: "2026-10-18T09:58:00Z", CPULoad: 10, MemoryUsage: 40},
			{Timestamp: "2026-10-18T09:59:00Z", CPULoad: 14, MemoryUsage: 42},
		}})
	})
	mux.HandleFunc("GET /api/system/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"resources": client.SystemResources{
			DeviceID: r.PathValue("id"), Uptime: "1w2d3h", Version: "7.15", CPULoad: 12,
			FreeMemory: 512 << 20, TotalMemory: 1024 << 20, FreeHDD: 100 << 20, TotalHDD: 128 << 20,
			BoardName: "RB4011", ArchitectureName: "arm", Platform: "MikroTik",
		}})
	})
	mux.HandleFunc("GET /api/interfaces/history/{id}/{name}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"history": []client.TrafficSample{
			{Timestamp: "2026-10-18T09:59:00Z", RxSpeed: 1000, TxSpeed: 500},
			{Timestamp: "2026-10-18T10:00:00Z", RxSpeed: 2000, TxSpeed: 800},
		}})
	})
	mux.HandleFunc("GET /api/interfaces/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"interfaces": []client.Interface{
			{Name: "ether1", Type: "ether", Running: true, RxByte: 1 << 30, TxByte: 1 << 28, MACAddress: "AA:BB:CC:00:00:01"},
			{Name: "ether2", Type: "ether", Running: false, MACAddress: "AA:BB:CC:00:00:02"},
		}})
	})
	mux.HandleFunc("GET /api/alerts", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failAlerts {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database locked"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"alerts": b.alerts})
	})
	mux.HandleFunc("POST /api/alerts/{id}/resolve", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		id := r.PathValue("id")
		if msg, ok := b.rejectAlerts[id]; ok {
			writeJSON(w, http.StatusOK, client.ActionResult{Success: false, Error: msg})
			return
		}
		b.resolved = append(b.resolved, id)
		writeJSON(w, http.StatusOK, client.ActionResult{Success: true})
	})
	mux.HandleFunc("POST /api/refresh/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.refreshCalls = append(b.refreshCalls, r.PathValue("id"))
		writeJSON(w, b.refreshCode, b.refresh)
	})
	mux.HandleFunc("GET /api/logs/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"logs": []client.LogEntry{
			{Time: "10:00:01", Topics: "dhcp,info", Message: "lease assigned to 192.168.88.20"},
			{Time: "10:00:05", Topics: "system,error,critical", Message: "login failure for user admin"},
		}})
	})
	mux.HandleFunc("GET /api/ip/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"addresses": []client.IPAddress{
			{Address: "192.168.88.1/24", Network: "192.168.88.0", Interface: "bridge"},
		}})
	})
	mux.HandleFunc("GET /api/arp/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"entries": []client.ARPEntry{
			{Address: "192.168.88.20", MACAddress: "AA:BB:CC:00:00:20", Interface: "bridge", Dynamic: true, Complete: true},
		}})
	})
	mux.HandleFunc("GET /api/dhcp/{id}", notFound)
	mux.HandleFunc("GET /api/firewall/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"rules": []client.FirewallRule{
			{Chain: "input", Action: "accept", Comment: "allow established", Bytes: 2048, Packets: 12},
		}})
	})
	mux.HandleFunc("GET /api/wireless/{id}", notFound)
	mux.HandleFunc("GET /api/capsman/{id}", notFound)

	return mux
}

// useBackend points the global flags at a fake backend and restores every
// global the commands read when the test ends.
func useBackend(t *testing.T, b *fakeBackend) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(b.handler())
	t.Cleanup(server.Close)

	for _, key := range []string{
		"MIKRODASH_API_URL", "MIKRODASH_URL", "MIKRODASH_DEVICE", "MIKRODASH_ALL_PROXY",
		"MIKRODASH_REFRESH_INTERVAL", "MIKRODASH_TIMEOUT", "MIKRODASH_CONFIG_DIR",
	} {
		t.Setenv(key, "")
	}

	resetFlags(t)
	apiURL = server.URL
	logLevel = "error"
	return server
}

func resetFlags(t *testing.T) {
	t.Helper()

	saved := confirmResolveAll
	reset := func() {
		envFile = ""
		apiURL = ""
		dashboardURL = ""
		deviceID = ""
		allProxy = ""
		logLevel = ""
		timeout = 0
		jsonOutput = false
		alertStatus = "all"
		alertSeverity = "all"
		assumeYes = false
		logTopic = ""
		logMessage = ""
		showInterface = ""
		watchCount = 0
		confirmResolveAll = saved
	}
	reset()
	t.Cleanup(reset)
}

func (b *fakeBackend) resolvedIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.resolved...)
}

func (b *fakeBackend) refreshedDevices() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.refreshCalls...)
}
