// ABOUTME: Session state holding the selected device
// ABOUTME: Mirrors the selection into a dashboard URL and notifies subscribers on change

package session

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/mikrodash/mikrodash/internal/client"
)

// DeviceParam is the dashboard URL query parameter carrying the device id.
const DeviceParam = "device"

// ErrNoDevices is returned when the backend monitors no devices.
var ErrNoDevices = errors.New("no devices configured on the backend")

// Session holds the currently selected device. It is safe for concurrent use.
type Session struct {
	mu          sync.RWMutex
	deviceID    string
	dashboard   *url.URL
	subscribers []func(deviceID string)
}

// New creates a session. dashboardURL may be empty; when it carries a device
// query parameter that device becomes the initial selection.
func New(dashboardURL string) (*Session, error) {
	s := &Session{}
	if dashboardURL == "" {
		return s, nil
	}

	u, err := url.Parse(dashboardURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard URL: %w", err)
	}
	s.dashboard = u
	s.deviceID = u.Query().Get(DeviceParam)
	return s, nil
}

// DeviceID returns the selected device, or "" when none is selected.
func (s *Session) DeviceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deviceID
}

// Subscribe registers fn to be called with the new device id after every change.
func (s *Session) Subscribe(fn func(deviceID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Select makes deviceID the current device and notifies subscribers.
// It reports whether the selection changed.
func (s *Session) Select(deviceID string) bool {
	s.mu.Lock()
	if deviceID == s.deviceID {
		s.mu.Unlock()
		return false
	}
	s.deviceID = deviceID
	subscribers := append([]func(string){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(deviceID)
	}
	return true
}

// URL returns the dashboard URL with the device query parameter set to the
// current selection, or "" when no dashboard URL is known.
func (s *Session) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dashboard == nil {
		return ""
	}
	u := *s.dashboard
	q := u.Query()
	if s.deviceID == "" {
		q.Del(DeviceParam)
	} else {
		q.Set(DeviceParam, s.deviceID)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ResolveDevice picks the device to show: the requested one when given, the
// first device otherwise.
func ResolveDevice(devices []client.Device, requested string) (string, error) {
	if requested != "" {
		for _, d := range devices {
			if d.ID == requested {
				return requested, nil
			}
		}
		return "", fmt.Errorf("device %q not found", requested)
	}
	if len(devices) == 0 {
		return "", ErrNoDevices
	}
	return devices[0].ID, nil
}

// FindDevice returns the device with the given id.
func FindDevice(devices []client.Device, id string) (client.Device, bool) {
	for _, d := range devices {
		if d.ID == id {
			return d, true
		}
	}
	return client.Device{}, false
}
