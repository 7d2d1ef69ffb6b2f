// ABOUTME: Unit formatting for bytes, bit rates, RouterOS durations and timestamps
// ABOUTME: All functions are pure and deterministic for a given input

package view

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	byteUnits  = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
	speedUnits = []string{"bps", "Kbps", "Mbps", "Gbps", "Tbps"}
)

// FormatBytes renders a byte count in base 1024 with up to two decimals,
// trailing zeros trimmed: 1536 -> "1.5 KB", 0 -> "0 Bytes".
func FormatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if bytes < 0 {
		return "-" + scale(-float64(bytes), 1024, byteUnits)
	}
	return scale(float64(bytes), 1024, byteUnits)
}

// FormatSpeed renders a rate given in bytes per second as bits per second in
// base 1000: 125 -> "1 Kbps", 0 -> "0 bps".
func FormatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond == 0 || math.IsNaN(bytesPerSecond) {
		return "0 bps"
	}
	if bytesPerSecond < 0 {
		return "-" + FormatSpeed(-bytesPerSecond)
	}
	return scale(bytesPerSecond*8, 1000, speedUnits)
}

func scale(value, base float64, units []string) string {
	i := 0
	for value >= base && i < len(units)-1 {
		value /= base
		i++
	}
	scaled := math.Round(value*100) / 100
	return strconv.FormatFloat(scaled, 'f', -1, 64) + " " + units[i]
}

var uptimePart = regexp.MustCompile(`(\d+)([wdhms])`)

var uptimeUnits = []struct {
	suffix string
	name   string
}{
	{"w", "week"},
	{"d", "day"},
	{"h", "hour"},
	{"m", "minute"},
	{"s", "second"},
}

// FormatUptime expands a RouterOS duration such as "1w2d3h4m5s" into
// "1 week 2 days 3 hours 4 minutes 5 seconds". Zero units are omitted.
func FormatUptime(uptime string) string {
	if uptime == "" {
		return ""
	}

	values := make(map[string]int, len(uptimeUnits))
	for _, m := range uptimePart.FindAllStringSubmatch(uptime, -1) {
		if _, seen := values[m[2]]; seen {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		values[m[2]] = n
	}

	var parts []string
	for _, u := range uptimeUnits {
		n := values[u.suffix]
		if n <= 0 {
			continue
		}
		parts = append(parts, plural(n, u.name))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatMAC inserts colons into a bare hex MAC address. Addresses that
// already contain colons are returned unchanged.
func FormatMAC(mac string) string {
	if mac == "" || strings.Contains(mac, ":") {
		return mac
	}
	var pairs []string
	for i := 0; i < len(mac); i += 2 {
		end := i + 2
		if end > len(mac) {
			end = len(mac)
		}
		pairs = append(pairs, mac[i:end])
	}
	return strings.Join(pairs, ":")
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTime parses the ISO-8601 timestamps the backend emits, with or
// without a zone offset. Zone-less values are read as local time.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders a backend timestamp as "2006-01-02 15:04:05 (3 minutes ago)"
// relative to now. Unparseable input is returned unchanged.
func FormatTime(s string, now time.Time) string {
	t, ok := ParseTime(s)
	if !ok {
		return s
	}
	return t.Format("2006-01-02 15:04:05") + " (" + humanize.RelTime(t, now, "ago", "from now") + ")"
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
