// ABOUTME: Key bindings for the TUI
// ABOUTME: Groups bindings per page so the footer only advertises keys that apply

package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mikrodash/mikrodash/internal/monitor"
)

type keyMap struct {
	Quit       key.Binding
	Pages      key.Binding
	Devices    key.Binding
	Refresh    key.Binding
	Fetch      key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Pause      key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Resolve    key.Binding
	ResolveAll key.Binding
	Status     key.Binding
	Severity   key.Binding
	Search     key.Binding
	Topic      key.Binding
	Clear      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Pages:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "Pages")),
		Devices:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Device")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Refresh")),
		Fetch:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "Reload")),
		Faster:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "Faster")),
		Slower:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "Slower")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Pause")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑", "Up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓", "Down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Chart")),
		Resolve:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Resolve")),
		ResolveAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "Resolve all")),
		Status:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Status")),
		Severity:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Severity")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Message")),
		Topic:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Topic")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Clear")),
	}
}

// pageBindings are the shortcuts shown in the footer for a page.
func (k keyMap) pageBindings(page monitor.Page) []key.Binding {
	common := []key.Binding{k.Pages, k.Devices, k.Refresh, k.Fetch, k.Pause}
	switch page {
	case monitor.PageInterfaces:
		return append(common, k.Up, k.Down, k.Select, k.Quit)
	case monitor.PageAlerts:
		return append(common, k.Up, k.Down, k.Resolve, k.ResolveAll, k.Status, k.Severity, k.Quit)
	case monitor.PageLogs:
		return append(common, k.Up, k.Down, k.Search, k.Topic, k.Clear, k.Quit)
	default:
		return append(common, k.Faster, k.Slower, k.Quit)
	}
}
