package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikrodash/mikrodash/internal/client"
)

func TestNew_ReadsDeviceFromURL(t *testing.T) {
	s, err := New("http://monitor.lan:5000/dashboard?device=router-2")
	require.NoError(t, err)
	assert.Equal(t, "router-2", s.DeviceID())
}

func TestNew_WithoutURL(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.Empty(t, s.DeviceID())
	assert.Empty(t, s.URL())
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("http://[::1")
	assert.Error(t, err)
}

func TestSelect_MirrorsIntoURL(t *testing.T) {
	s, err := New("http://monitor.lan:5000/dashboard?device=1&theme=dark")
	require.NoError(t, err)

	assert.True(t, s.Select("7"))
	assert.Equal(t, "http://monitor.lan:5000/dashboard?device=7&theme=dark", s.URL())

	s.Select("")
	assert.Equal(t, "http://monitor.lan:5000/dashboard?theme=dark", s.URL())
}

func TestSelect_NotifiesSubscribersOnChangeOnly(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)

	var got []string
	s.Subscribe(func(id string) { got = append(got, id) })

	assert.True(t, s.Select("1"))
	assert.False(t, s.Select("1"))
	assert.True(t, s.Select("2"))

	assert.Equal(t, []string{"1", "2"}, got)
}

func TestResolveDevice(t *testing.T) {
	devices := []client.Device{{ID: "a"}, {ID: "b"}}

	id, err := ResolveDevice(devices, "")
	require.NoError(t, err)
	assert.Equal(t, "a", id, "defaults to the first device")

	id, err = ResolveDevice(devices, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", id)

	_, err = ResolveDevice(devices, "zzz")
	assert.ErrorContains(t, err, `device "zzz" not found`)

	_, err = ResolveDevice(nil, "")
	assert.ErrorIs(t, err, ErrNoDevices)
}

func TestFindDevice(t *testing.T) {
	devices := []client.Device{{ID: "a", Name: "core"}}

	d, ok := FindDevice(devices, "a")
	assert.True(t, ok)
	assert.Equal(t, "core", d.Name)

	_, ok = FindDevice(devices, "b")
	assert.False(t, ok)
}
