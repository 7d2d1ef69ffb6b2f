// ABOUTME: Device picker and confirmation dialogs embedded in the TUI
// ABOUTME: Wraps huh forms as bubbletea models that report their outcome as messages

package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/tui/styles"
)

// DeviceSelectedMsg is sent when the user picks a device
type DeviceSelectedMsg struct {
	DeviceID string
}

// ConfirmedMsg is sent when the user accepts a confirmation
type ConfirmedMsg struct {
	Action string
}

// CancelledMsg is sent when a dialog is dismissed without a choice
type CancelledMsg struct{}

func selected(id string) tea.Cmd {
	return func() tea.Msg { return DeviceSelectedMsg{DeviceID: id} }
}

func cancelled() tea.Msg { return CancelledMsg{} }

// createTheme returns a huh theme matching the dashboard palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.Info).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(styles.Muted).
		Background(styles.Surface).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)

	return t
}

// DeviceLabel is the picker label for a device
func DeviceLabel(d client.Device, current string) string {
	name := d.Name
	if name == "" {
		name = d.ID
	}
	label := fmt.Sprintf("%s (%s:%d)", name, d.Host, d.Port)
	switch {
	case !d.Enabled:
		label += " [disabled]"
	case d.Error != "":
		label += " [error]"
	}
	if d.ID == current {
		label += " •"
	}
	return label
}

// Picker lets the user choose the device to monitor
type Picker struct {
	form   *huh.Form
	choice string
	count  int
}

// NewPicker creates a picker over devices with current preselected
func NewPicker(devices []client.Device, current string) *Picker {
	p := &Picker{choice: current, count: len(devices)}

	options := make([]huh.Option[string], len(devices))
	for i, d := range devices {
		options[i] = huh.NewOption(DeviceLabel(d, current), d.ID)
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select device").
				Description("Use ↑/↓ to select, Enter to confirm, Esc to cancel").
				Options(options...).
				Value(&p.choice),
		),
	).WithTheme(createTheme()).WithShowHelp(false)
	return p
}

// Init implements tea.Model
func (p *Picker) Init() tea.Cmd {
	if p.count == 0 {
		return cancelled
	}
	return p.form.Init()
}

// Update implements tea.Model
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return p, cancelled
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	switch p.form.State {
	case huh.StateCompleted:
		return p, selected(p.choice)
	case huh.StateAborted:
		return p, cancelled
	}
	return p, cmd
}

// View implements tea.Model
func (p *Picker) View() string {
	return p.form.View()
}

// Confirm asks a yes/no question before a destructive action
type Confirm struct {
	form   *huh.Form
	action string
	ok     bool
}

// NewConfirm creates a confirmation for action with the given question
func NewConfirm(action, question string) *Confirm {
	c := &Confirm{action: action}
	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&c.ok),
		),
	).WithTheme(createTheme()).WithShowHelp(false)
	return c
}

// Init implements tea.Model
func (c *Confirm) Init() tea.Cmd {
	return c.form.Init()
}

// Update implements tea.Model
func (c *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return c, cancelled
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	switch c.form.State {
	case huh.StateCompleted:
		if c.ok {
			action := c.action
			return c, func() tea.Msg { return ConfirmedMsg{Action: action} }
		}
		return c, cancelled
	case huh.StateAborted:
		return c, cancelled
	}
	return c, cmd
}

// View implements tea.Model
func (c *Confirm) View() string {
	return c.form.View()
}

// Action returns the action being confirmed
func (c *Confirm) Action() string {
	return c.action
}
