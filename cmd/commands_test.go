// ABOUTME: Tests for the devices, logs, refresh and watch commands
// ABOUTME: Runs each command against the fake backend and checks output and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestRunDevices(t *testing.T) {
	useBackend(t, newFakeBackend())

	var buf bytes.Buffer
	exitCode := runDevices(context.Background(), &buf)

	if exitCode != exitPartial {
		t.Errorf("expected exit code 1 for a device with errors, got %d", exitCode)
	}
	for _, want := range []string{"core", "10.0.0.1:8728", "Connected", "edge", "Error: timeout"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected output to contain %q\n%s", want, buf.String())
		}
	}
}

func TestRunDevices_JSON(t *testing.T) {
	b := newFakeBackend()
	b.devices = b.devices[:1]
	useBackend(t, b)
	jsonOutput = true

	var buf bytes.Buffer
	exitCode := runDevices(context.Background(), &buf)
	if exitCode != exitOK {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}

	var parsed struct {
		Devices []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"devices"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Devices) != 1 || parsed.Devices[0].Name != "core" {
		t.Errorf("unexpected devices: %+v", parsed.Devices)
	}
}

func TestDeviceStatus(t *testing.T) {
	b := newFakeBackend()
	core, edge := b.devices[0], b.devices[1]
	never := core
	never.LastConnected = ""
	disabled := edge
	disabled.Enabled = false

	tests := map[string]string{
		"Connected":       deviceStatus(core),
		"Error: timeout":  deviceStatus(edge),
		"Never connected": deviceStatus(never),
		"Disabled":        deviceStatus(disabled),
	}
	for want, got := range tests {
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestRunLogs_Filter(t *testing.T) {
	useBackend(t, newFakeBackend())
	logTopic = "DHCP"

	var buf bytes.Buffer
	exitCode := runLogs(context.Background(), &buf)

	if exitCode != exitOK {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	output := buf.String()
	if !strings.Contains(output, "lease assigned") {
		t.Errorf("expected matching entry\n%s", output)
	}
	if strings.Contains(output, "login failure") {
		t.Errorf("expected non-matching entry filtered out\n%s", output)
	}
	if !strings.Contains(output, "Showing 1 of 2 entries") {
		t.Errorf("expected filter footer\n%s", output)
	}
	if !strings.Contains(output, "Unique topics: 2") {
		t.Errorf("expected topic distribution over the whole log\n%s", output)
	}
}

func TestRunRefresh(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		status   int
		exitCode int
		expected string
	}{
		{name: "success", result: `{"success":true}`, status: http.StatusOK, exitCode: exitOK, expected: "Data refreshed successfully"},
		{name: "partial", result: `{"success":false,"results":{"system":true,"interfaces":false,"logs":false}}`, status: http.StatusOK, exitCode: exitPartial, expected: "Refreshed with failures: interfaces, logs"},
		{name: "rejected", result: `{"success":false,"error":"device offline"}`, status: http.StatusOK, exitCode: exitError, expected: "Error: device offline"},
		{name: "server error", result: `{"error":"boom"}`, status: http.StatusInternalServerError, exitCode: exitError, expected: "Error:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newFakeBackend()
			if err := json.Unmarshal([]byte(tc.result), &b.refresh); err != nil {
				t.Fatal(err)
			}
			b.refreshCode = tc.status
			useBackend(t, b)

			var buf bytes.Buffer
			exitCode := runRefresh(context.Background(), &buf)

			if exitCode != tc.exitCode {
				t.Errorf("expected exit code %d, got %d\n%s", tc.exitCode, exitCode, buf.String())
			}
			if !strings.Contains(buf.String(), tc.expected) {
				t.Errorf("expected output to contain %q, got %s", tc.expected, buf.String())
			}
			if calls := b.refreshedDevices(); len(calls) != 1 || calls[0] != "r1" {
				t.Errorf("expected one refresh of r1, got %v", calls)
			}
		})
	}
}

func TestRunWatch_Count(t *testing.T) {
	useBackend(t, newFakeBackend())
	watchCount = 1

	var buf bytes.Buffer
	exitCode := runWatch(context.Background(), &buf, nil)

	if exitCode != exitOK {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"core", "cpu 12.0%", "mem 50.0%", "interfaces 1/2 up", "alerts 1 active"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("expected line to contain %q, got %q", want, lines[0])
		}
	}
}

func TestRunWatch_JSONLines(t *testing.T) {
	b := newFakeBackend()
	b.failAlerts = true
	useBackend(t, b)
	jsonOutput = true
	watchCount = 1

	var buf bytes.Buffer
	exitCode := runWatch(context.Background(), &buf, nil)

	if exitCode != exitPartial {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	var sample watchSample
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &sample); err != nil {
		t.Fatalf("line is not valid JSON: %v\n%s", err, buf.String())
	}
	if sample.DeviceID != "r1" || sample.Seq != 1 {
		t.Errorf("unexpected sample header: %+v", sample)
	}
	if sample.CPU == nil || *sample.CPU != 12 {
		t.Errorf("expected cpu 12, got %v", sample.CPU)
	}
	if len(sample.Unavailable) != 1 || sample.Unavailable[0] != "alerts" {
		t.Errorf("expected alerts unavailable, got %v", sample.Unavailable)
	}
}
