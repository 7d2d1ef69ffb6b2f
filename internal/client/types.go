// ABOUTME: Response types for the monitoring backend API
// ABOUTME: Mirrors the JSON payloads of the /api endpoints

package client

import "encoding/json"

// Device represents one monitored router from /api/devices
type Device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Host          string `json:"host"`
	Port          int    `json:"port"`
	Enabled       bool   `json:"enabled"`
	LastConnected string `json:"last_connected,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Connected reports whether the backend reached the device at least once
// and its last attempt did not fail.
func (d Device) Connected() bool {
	return d.LastConnected != "" && d.Error == ""
}

// SystemResources is the current resource snapshot of a device
type SystemResources struct {
	DeviceID         string  `json:"device_id"`
	Uptime           string  `json:"uptime"`
	Version          string  `json:"version"`
	CPULoad          float64 `json:"cpu_load"`
	FreeMemory       int64   `json:"free_memory"`
	TotalMemory      int64   `json:"total_memory"`
	FreeHDD          int64   `json:"free_hdd"`
	TotalHDD         int64   `json:"total_hdd"`
	ArchitectureName string  `json:"architecture_name"`
	BoardName        string  `json:"board_name"`
	Platform         string  `json:"platform"`
	Timestamp        string  `json:"timestamp,omitempty"`
}

// ResourceSample is one point of the system resource history
type ResourceSample struct {
	Timestamp   string  `json:"timestamp"`
	CPULoad     float64 `json:"cpu_load"`
	FreeMemory  int64   `json:"free_memory"`
	TotalMemory int64   `json:"total_memory"`
	MemoryUsage float64 `json:"memory_usage"`
}

// Interface is one network interface of a device
type Interface struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Running          bool    `json:"running"`
	Disabled         bool    `json:"disabled"`
	RxByte           int64   `json:"rx_byte"`
	TxByte           int64   `json:"tx_byte"`
	RxPacket         int64   `json:"rx_packet"`
	TxPacket         int64   `json:"tx_packet"`
	RxError          int64   `json:"rx_error"`
	TxError          int64   `json:"tx_error"`
	RxDrop           int64   `json:"rx_drop"`
	TxDrop           int64   `json:"tx_drop"`
	RxSpeed          float64 `json:"rx_speed"`
	TxSpeed          float64 `json:"tx_speed"`
	LastLinkDownTime string  `json:"last_link_down_time"`
	LastLinkUpTime   string  `json:"last_link_up_time"`
	ActualMTU        int     `json:"actual_mtu"`
	MACAddress       string  `json:"mac_address"`
	Timestamp        string  `json:"timestamp,omitempty"`
}

// TrafficSample is one point of an interface's traffic history (speeds in bytes/s)
type TrafficSample struct {
	Timestamp string  `json:"timestamp"`
	RxByte    int64   `json:"rx_byte"`
	TxByte    int64   `json:"tx_byte"`
	RxSpeed   float64 `json:"rx_speed"`
	TxSpeed   float64 `json:"tx_speed"`
}

// Alert is a threshold or state-change alert raised by the backend
type Alert struct {
	// ID is the identifier used for resolution. When the backend omits it the
	// client assigns the alert's position in the unscoped /api/alerts list.
	ID           ID     `json:"id"`
	DeviceID     string `json:"device_id"`
	Type         string `json:"type"`
	Message      string `json:"message"`
	Severity     string `json:"severity"`
	Created      string `json:"created,omitempty"`
	Active       bool   `json:"active"`
	Resolved     bool   `json:"resolved"`
	ResolvedTime string `json:"resolved_time,omitempty"`
}

// LogEntry is one line of the router log
type LogEntry struct {
	Time      string `json:"time"`
	Topics    string `json:"topics"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// IPAddress is an address assigned on the device
type IPAddress struct {
	Address   string `json:"address"`
	Network   string `json:"network"`
	Interface string `json:"interface"`
	Dynamic   bool   `json:"dynamic"`
	Disabled  bool   `json:"disabled"`
	Comment   string `json:"comment"`
}

// ARPEntry is one row of the ARP table
type ARPEntry struct {
	Address    string `json:"address"`
	MACAddress string `json:"mac_address"`
	Interface  string `json:"interface"`
	Dynamic    bool   `json:"dynamic"`
	Complete   bool   `json:"complete"`
}

// DHCPLease is one lease handed out by the device
type DHCPLease struct {
	Address      string `json:"address"`
	MACAddress   string `json:"mac_address"`
	ClientID     string `json:"client_id"`
	Hostname     string `json:"hostname"`
	Status       string `json:"status"`
	ExpiresAfter string `json:"expires_after"`
}

// FirewallRule is one filter rule with its counters
type FirewallRule struct {
	Chain    string `json:"chain"`
	Action   string `json:"action"`
	Disabled bool   `json:"disabled"`
	Comment  string `json:"comment"`
	Bytes    int64  `json:"bytes"`
	Packets  int64  `json:"packets"`
}

// WirelessClient is a station registered on a local wireless interface
type WirelessClient struct {
	Interface      string `json:"interface"`
	MACAddress     string `json:"mac_address"`
	SignalStrength int    `json:"signal_strength"`
	TxRate         int64  `json:"tx_rate"`
	RxRate         int64  `json:"rx_rate"`
	TxBytes        int64  `json:"tx_bytes"`
	RxBytes        int64  `json:"rx_bytes"`
	Uptime         string `json:"uptime"`
}

// CapsmanRegistration is a station registered through a CAPsMAN-managed AP
type CapsmanRegistration struct {
	Interface      string `json:"interface"`
	RadioName      string `json:"radio_name"`
	MACAddress     string `json:"mac_address"`
	RemoteAPMAC    string `json:"remote_ap_mac"`
	SignalStrength int    `json:"signal_strength"`
	TxRate         int64  `json:"tx_rate"`
	RxRate         int64  `json:"rx_rate"`
	TxBytes        int64  `json:"tx_bytes"`
	RxBytes        int64  `json:"rx_bytes"`
	Uptime         string `json:"uptime"`
	SSID           string `json:"ssid"`
	Channel        string `json:"channel"`
	Comment        string `json:"comment"`
	Status         string `json:"status"`
}

// ActionResult is the body returned by resolve and refresh
type ActionResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Results map[string]bool `json:"results,omitempty"`
}

// ID is an identifier the backend may send as a JSON string or number.
type ID string

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
