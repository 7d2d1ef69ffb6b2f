// ABOUTME: The pages of the monitor and their titles
// ABOUTME: Each page owns a fixed set of backend resources fetched per cycle

package monitor

import (
	"fmt"
	"strings"
)

// Page identifies one monitor page.
type Page int

const (
	PageDashboard Page = iota
	PageSystem
	PageInterfaces
	PageAlerts
	PageLogs
	PageAddresses
	PageServices
)

// Pages lists every page in navigation order.
var Pages = []Page{PageDashboard, PageSystem, PageInterfaces, PageAlerts, PageLogs, PageAddresses, PageServices}

var pageNames = map[Page]string{
	PageDashboard:  "dashboard",
	PageSystem:     "system",
	PageInterfaces: "interfaces",
	PageAlerts:     "alerts",
	PageLogs:       "logs",
	PageAddresses:  "addresses",
	PageServices:   "services",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// Title is the capitalised page name shown in headers.
func (p Page) Title() string {
	s := p.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParsePage looks a page up by name.
func ParsePage(name string) (Page, error) {
	for p, n := range pageNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", name)
}
