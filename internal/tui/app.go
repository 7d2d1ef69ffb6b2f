// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state, polls the selected device and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/monitor"
	"github.com/mikrodash/mikrodash/internal/poll"
	"github.com/mikrodash/mikrodash/internal/session"
	"github.com/mikrodash/mikrodash/internal/tui/dashboard"
	"github.com/mikrodash/mikrodash/internal/tui/icons"
	"github.com/mikrodash/mikrodash/internal/tui/menu"
	"github.com/mikrodash/mikrodash/internal/tui/recentdevices"
	"github.com/mikrodash/mikrodash/internal/tui/styles"
	"github.com/mikrodash/mikrodash/internal/tui/widgets"
	"github.com/mikrodash/mikrodash/internal/view"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenPicker
	ScreenConfirm
)

// Layout constants
const (
	minTerminalWidth = 80 // Frame never renders narrower than this
	frameOverhead    = 3  // Header, notice line and footer
)

const (
	noticeDuration   = 5 * time.Second
	actionResolveAll = "resolve-all"
)

// intervals are the refresh periods stepped through with +/-.
var intervals = []time.Duration{
	10 * time.Second,
	30 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
}

// editing names the log filter being typed into, if any.
type editing int

const (
	editNone editing = iota
	editMessage
	editTopic
)

// devicesLoadedMsg is sent when the device list is fetched
type devicesLoadedMsg struct {
	devices []client.Device
	err     error
	pick    bool // open the picker once loaded
}

// cycleMsg carries the snapshot of one fetch cycle
type cycleMsg struct {
	cycle poll.Cycle
	snap  monitor.Snapshot
}

// actionDoneMsg is sent when a user action finishes
type actionDoneMsg struct {
	notice  monitor.Notice
	refetch bool
}

// noticeExpiredMsg clears notice id if it is still shown
type noticeExpiredMsg struct {
	id int
}

// clockMsg redraws relative times
type clockMsg time.Time

// target is what the next cycle loads. It is shared with the poll goroutines.
type target struct {
	mu    sync.Mutex
	page  monitor.Page
	iface string
}

func (t *target) get() (monitor.Page, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.page, t.iface
}

func (t *target) set(page monitor.Page, iface string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.page, t.iface = page, iface
}

// Options configures the App
type Options struct {
	API      monitor.API
	Session  *session.Session
	Recent   *recentdevices.Store
	DeviceID string // requested device; empty picks the last viewed or first
	Page     monitor.Page
	Interval time.Duration
	Logger   *slog.Logger
}

// App is the root model for the TUI
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	api    monitor.API
	loader *monitor.Loader
	sess   *session.Session
	recent *recentdevices.Store
	ctrl   *poll.Controller
	cycles chan cycleMsg
	minSeq uint64 // cycles launched before the last page or device change are dropped
	logger *slog.Logger
	now    func() time.Time

	screen     Screen
	width      int
	height     int
	page       monitor.Page
	target     *target
	state      *monitor.State
	dashboard  *dashboard.Dashboard
	picker     *menu.Picker
	confirm    *menu.Confirm
	spinner    spinner.Model
	input      textinput.Model
	editing    editing
	keys       keyMap
	requested  string
	devices    []client.Device
	err        error
	notice     *monitor.Notice
	noticeID   int
	lastUpdate time.Time
	paused     bool
	blurred    bool

	alertFilter view.AlertFilter
	logFilter   view.LogFilter
}

// New creates a new TUI application. Polling starts once the device list has
// loaded.
func New(ctx context.Context, opts Options) *App {
	ctx, cancel := context.WithCancel(ctx)
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Session == nil {
		opts.Session, _ = session.New("")
	}
	if opts.Recent == nil {
		opts.Recent = recentdevices.New("")
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	input := textinput.New()
	input.CharLimit = 64
	input.Prompt = "› "

	a := &App{
		ctx:         ctx,
		cancel:      cancel,
		api:         opts.API,
		loader:      monitor.NewLoader(opts.API),
		sess:        opts.Session,
		recent:      opts.Recent,
		cycles:      make(chan cycleMsg, 8),
		logger:      opts.Logger,
		now:         time.Now,
		page:        opts.Page,
		target:      &target{page: opts.Page},
		state:       monitor.NewState(),
		dashboard:   dashboard.New(minTerminalWidth, 24),
		spinner:     sp,
		input:       input,
		keys:        newKeyMap(),
		requested:   opts.DeviceID,
		alertFilter: view.AlertFilter{Status: view.FilterAll, Severity: view.FilterAll},
	}
	a.ctrl = poll.New(ctx, poll.RunnerFunc(a.runCycle),
		poll.WithInterval(opts.Interval),
		poll.WithLogger(opts.Logger),
	)
	a.sess.Subscribe(a.onDeviceChange)
	a.dashboard.Focus(focusPanel(a.page))
	a.rebuild()
	return a
}

// runCycle loads the current page on a poll goroutine and hands the snapshot
// to the bubbletea loop.
func (a *App) runCycle(ctx context.Context, c poll.Cycle) {
	page, iface := a.target.get()
	snap := a.loader.Load(ctx, page, c.DeviceID, monitor.LoadOptions{Interface: iface})
	select {
	case a.cycles <- cycleMsg{cycle: c, snap: snap}:
	case <-ctx.Done():
	}
}

func (a *App) waitForCycle() tea.Cmd {
	ch := a.cycles
	return func() tea.Msg { return <-ch }
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockMsg(t) })
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadDevices(false), a.waitForCycle(), a.spinner.Tick, clockTick())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(a.frameWidth(), a.contentHeight())
		a.input.Width = max(10, a.frameWidth()/3)
		switch a.screen {
		case ScreenPicker:
			return a.updatePicker(msg)
		case ScreenConfirm:
			return a.updateConfirm(msg)
		}
		return a, nil

	case tea.FocusMsg:
		a.blurred = false
		a.syncVisible()
		return a, nil

	case tea.BlurMsg:
		a.blurred = true
		a.syncVisible()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}
		switch a.screen {
		case ScreenPicker:
			return a.updatePicker(msg)
		case ScreenConfirm:
			return a.updateConfirm(msg)
		}
		if a.editing != editNone {
			return a.updateInput(msg)
		}
		return a.handleKey(msg)

	case devicesLoadedMsg:
		return a.handleDevicesLoaded(msg)

	case cycleMsg:
		a.handleCycle(msg)
		return a, a.waitForCycle()

	case menu.DeviceSelectedMsg:
		a.screen = ScreenDashboard
		a.picker = nil
		a.selectDevice(msg.DeviceID)
		return a, nil

	case menu.ConfirmedMsg:
		a.screen = ScreenDashboard
		a.confirm = nil
		if msg.Action == actionResolveAll {
			return a, a.resolveAll()
		}
		return a, nil

	case menu.CancelledMsg:
		a.screen = ScreenDashboard
		a.picker = nil
		a.confirm = nil
		return a, nil

	case actionDoneMsg:
		if msg.refetch {
			a.ctrl.Refresh()
		}
		return a, a.setNotice(msg.notice)

	case noticeExpiredMsg:
		if msg.id == a.noticeID {
			a.notice = nil
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.dashboard.SetSpinner(a.spinner.View())
		return a, cmd

	case clockMsg:
		a.rebuild()
		return a, clockTick()
	}

	switch a.screen {
	case ScreenPicker:
		return a.updatePicker(msg)
	case ScreenConfirm:
		return a.updateConfirm(msg)
	}
	return a, nil
}

func (a *App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.picker == nil {
		a.screen = ScreenDashboard
		return a, nil
	}
	_, cmd := a.picker.Update(msg)
	return a, cmd
}

func (a *App) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.confirm == nil {
		a.screen = ScreenDashboard
		return a, nil
	}
	_, cmd := a.confirm.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, a.quit()

	case key.Matches(msg, a.keys.Pages):
		if p, ok := pageForKey(msg.String()); ok {
			a.switchPage(p)
		}
		return a, nil

	case key.Matches(msg, a.keys.Devices):
		return a, a.loadDevices(true)

	case key.Matches(msg, a.keys.Refresh):
		return a, a.refresh()

	case key.Matches(msg, a.keys.Fetch):
		if !a.ctrl.Refresh() {
			return a, a.setNotice(monitor.Notice{Text: "No device selected", Level: view.LevelInfo})
		}
		return a, nil

	case key.Matches(msg, a.keys.Faster):
		return a, a.stepInterval(-1)

	case key.Matches(msg, a.keys.Slower):
		return a, a.stepInterval(1)

	case key.Matches(msg, a.keys.Pause):
		a.paused = !a.paused
		a.syncVisible()
		return a, nil

	case key.Matches(msg, a.keys.Up):
		a.dashboard.Move(-1)
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.dashboard.Move(1)
		return a, nil
	}

	switch a.page {
	case monitor.PageInterfaces:
		if key.Matches(msg, a.keys.Select) {
			a.chartSelectedInterface()
		}
	case monitor.PageAlerts:
		return a.handleAlertKey(msg)
	case monitor.PageLogs:
		return a.handleLogKey(msg)
	}
	return a, nil
}

func (a *App) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Resolve):
		return a, a.resolveSelected()

	case key.Matches(msg, a.keys.ResolveAll):
		alerts, _ := a.state.Alerts.Data()
		n := len(view.ActiveAlertIDs(alerts))
		if n == 0 {
			return a, a.setNotice(monitor.ResolveAllResult{}.Notice())
		}
		a.confirm = menu.NewConfirm(actionResolveAll, fmt.Sprintf("Are you sure you want to resolve all %d active alerts?", n))
		a.screen = ScreenConfirm
		return a, a.confirm.Init()

	case key.Matches(msg, a.keys.Status):
		a.alertFilter.Status = view.NextFilter(view.StatusFilters, a.alertFilter.Status)
		a.rebuild()

	case key.Matches(msg, a.keys.Severity):
		a.alertFilter.Severity = view.NextFilter(view.SeverityFilters, a.alertFilter.Severity)
		a.rebuild()
	}
	return a, nil
}

func (a *App) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Search):
		return a, a.startEditing(editMessage, a.logFilter.Message, "message")

	case key.Matches(msg, a.keys.Topic):
		return a, a.startEditing(editTopic, a.logFilter.Topic, "topic")

	case key.Matches(msg, a.keys.Clear):
		a.logFilter = view.LogFilter{}
		a.rebuild()
	}
	return a, nil
}

func (a *App) startEditing(field editing, value, placeholder string) tea.Cmd {
	a.editing = field
	a.input.Placeholder = "filter by " + placeholder
	a.input.SetValue(value)
	a.input.CursorEnd()
	return a.input.Focus()
}

// updateInput feeds keys to the filter input, applying the filter as typed.
func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.editing = editNone
		a.input.Blur()
		return a, nil
	case tea.KeyEsc:
		a.setLogFilter("")
		a.editing = editNone
		a.input.Blur()
		a.rebuild()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.setLogFilter(a.input.Value())
	a.rebuild()
	return a, cmd
}

func (a *App) setLogFilter(value string) {
	switch a.editing {
	case editMessage:
		a.logFilter.Message = value
	case editTopic:
		a.logFilter.Topic = value
	}
}

func (a *App) handleDevicesLoaded(msg devicesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.logger.Warn("Failed to load devices", "error", msg.err)
		if a.sess.DeviceID() == "" {
			a.err = msg.err
			return a, nil
		}
		return a, a.setNotice(monitor.Notice{Text: "Error: " + msg.err.Error(), Level: view.LevelCritical})
	}

	a.devices = a.recent.Order(msg.devices)
	if msg.pick {
		a.picker = menu.NewPicker(a.devices, a.sess.DeviceID())
		a.screen = ScreenPicker
		return a, a.picker.Init()
	}

	if a.ctrl.DeviceID() != "" {
		return a, nil
	}
	id, err := a.initialDevice(msg.devices)
	if err != nil {
		a.err = err
		return a, nil
	}
	a.selectDevice(id)
	return a, nil
}

// initialDevice prefers the requested device, then the session's, then the
// last viewed one, then the first device.
func (a *App) initialDevice(devices []client.Device) (string, error) {
	if a.requested != "" {
		return session.ResolveDevice(devices, a.requested)
	}
	if current := a.sess.DeviceID(); current != "" {
		if _, ok := session.FindDevice(devices, current); ok {
			return current, nil
		}
	}
	if id, ok := a.recent.Last(devices); ok {
		return id, nil
	}
	return session.ResolveDevice(devices, "")
}

// selectDevice makes id current; polling restarts through the session subscription.
func (a *App) selectDevice(id string) {
	if !a.sess.Select(id) && a.ctrl.DeviceID() != id {
		a.onDeviceChange(id)
	}
}

func (a *App) onDeviceChange(id string) {
	a.err = nil
	a.state.Reset()
	a.minSeq = a.ctrl.Seq() + 1
	a.lastUpdate = time.Time{}
	a.target.set(a.page, "")
	if err := a.recent.Add(id); err != nil {
		a.logger.Debug("Failed to remember device", "device_id", id, "error", err)
	}
	a.ctrl.Select(id)
	a.syncVisible()
	a.rebuild()
}

// handleCycle applies a snapshot unless it belongs to another page or device.
func (a *App) handleCycle(msg cycleMsg) {
	if msg.cycle.Seq < a.minSeq || msg.snap.Page != a.page || !a.ctrl.Current(msg.cycle) {
		a.logger.Debug("Dropping stale cycle", "seq", msg.cycle.Seq, "device_id", msg.cycle.DeviceID, "page", msg.snap.Page.String())
		return
	}
	a.state.Apply(msg.cycle.Seq, msg.snap)
	a.lastUpdate = a.now()
	a.rebuild()
}

func (a *App) switchPage(p monitor.Page) {
	if p == a.page {
		return
	}
	a.page = p
	a.target.set(p, "")
	a.state.Reset()
	a.minSeq = a.ctrl.Seq() + 1
	a.dashboard.Focus(focusPanel(p))
	a.rebuild()

	if id := a.ctrl.DeviceID(); id != "" {
		a.ctrl.Stop()
		a.ctrl.Select(id)
	}
}

func (a *App) chartSelectedInterface() {
	ifaces, ok := a.state.Interfaces.Data()
	sel := a.dashboard.Selected()
	if !ok || sel < 0 {
		return
	}
	names := view.InterfaceNames(ifaces)
	if sel >= len(names) {
		return
	}
	page, _ := a.target.get()
	a.target.set(page, names[sel])
	a.ctrl.Refresh()
}

func (a *App) syncVisible() {
	a.ctrl.SetVisible(!a.paused && !a.blurred)
}

func (a *App) stepInterval(dir int) tea.Cmd {
	current := a.ctrl.Interval()
	idx := 0
	for i, d := range intervals {
		if d <= current {
			idx = i
		}
	}
	idx = max(0, min(len(intervals)-1, idx+dir))
	a.ctrl.SetInterval(intervals[idx])
	return a.setNotice(monitor.Notice{Text: "Refreshing every " + intervals[idx].String(), Level: view.LevelInfo})
}

func (a *App) setNotice(n monitor.Notice) tea.Cmd {
	a.noticeID++
	a.notice = &n
	id := a.noticeID
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return noticeExpiredMsg{id: id} })
}

func (a *App) quit() tea.Cmd {
	a.ctrl.Stop()
	a.cancel()
	return tea.Quit
}

func (a *App) loadDevices(pick bool) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		devices, err := a.api.Devices(ctx)
		return devicesLoadedMsg{devices: devices, err: err, pick: pick}
	}
}

// refresh asks the backend to re-collect the device, then re-fetches.
func (a *App) refresh() tea.Cmd {
	id := a.ctrl.DeviceID()
	if id == "" {
		return a.setNotice(monitor.Notice{Text: "No device selected", Level: view.LevelInfo})
	}
	ctx := a.ctx
	return func() tea.Msg {
		out := monitor.Refresh(ctx, a.api, id)
		return actionDoneMsg{notice: out.Notice, refetch: out.Refetch}
	}
}

func (a *App) resolveSelected() tea.Cmd {
	alerts, ok := a.state.Alerts.Data()
	sel := a.dashboard.Selected()
	if !ok || sel < 0 {
		return nil
	}
	shown := view.VisibleAlerts(alerts, a.alertFilter)
	if sel >= len(shown) {
		return nil
	}
	alert := shown[sel]
	if !alert.Active {
		return a.setNotice(monitor.Notice{Text: "Alert is already resolved", Level: view.LevelInfo})
	}

	ctx := a.ctx
	return func() tea.Msg {
		notice, err := monitor.ResolveAlert(ctx, a.api, alert.ID)
		return actionDoneMsg{notice: notice, refetch: err == nil}
	}
}

func (a *App) resolveAll() tea.Cmd {
	alerts, _ := a.state.Alerts.Data()
	ids := view.ActiveAlertIDs(alerts)
	ctx := a.ctx
	return func() tea.Msg {
		res := monitor.ResolveAll(ctx, a.api, ids)
		return actionDoneMsg{notice: res.Notice(), refetch: true}
	}
}

func (a *App) rebuild() {
	panels := a.state.Panels(a.page, monitor.PanelOptions{
		AlertFilter: a.alertFilter,
		LogFilter:   a.logFilter,
	}, a.now())
	a.dashboard.Update(panels)
}

// focusPanel names the panel whose rows are selectable on a page.
func focusPanel(p monitor.Page) string {
	switch p {
	case monitor.PageInterfaces:
		return "interfaces"
	case monitor.PageAlerts:
		return "alerts-table"
	case monitor.PageLogs:
		return "logs"
	}
	return ""
}

func pageForKey(k string) (monitor.Page, bool) {
	if len(k) != 1 || k[0] < '1' || int(k[0]-'1') >= len(monitor.Pages) {
		return 0, false
	}
	return monitor.Pages[k[0]-'1'], true
}

// View implements tea.Model
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenPicker:
		content = a.picker.View()
	case ScreenConfirm:
		content = a.confirm.View()
	default:
		content = a.viewDashboard()
	}
	return a.wrapWithFrame(content)
}

func (a *App) viewDashboard() string {
	if a.err != nil {
		return widgets.StatusText("Error: "+a.err.Error(), view.LevelCritical)
	}

	var sb strings.Builder
	sb.WriteString(a.dashboard.View())
	if bar := a.filterBar(); bar != "" {
		sb.WriteString("\n")
		sb.WriteString(bar)
	}
	return sb.String()
}

// filterBar shows the active filters of the alerts and logs pages.
func (a *App) filterBar() string {
	switch a.page {
	case monitor.PageAlerts:
		return styles.LabelStyle.Render("Status: ") + styles.ValueStyle.Render(a.alertFilter.Status) +
			styles.LabelStyle.Render("  Severity: ") + styles.ValueStyle.Render(a.alertFilter.Severity)
	case monitor.PageLogs:
		if a.editing != editNone {
			return a.input.View()
		}
		if !a.logFilter.Active() {
			return ""
		}
		return styles.LabelStyle.Render("Topic: ") + styles.ValueStyle.Render(orAny(a.logFilter.Topic)) +
			styles.LabelStyle.Render("  Message: ") + styles.ValueStyle.Render(orAny(a.logFilter.Message))
	}
	return ""
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

// frameWidth is the rendered frame width: one column short of the terminal
// to avoid wrapping, never below minTerminalWidth.
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

// contentHeight calculates the height available for dashboard content
func (a *App) contentHeight() int {
	return max(a.height-frameOverhead, 0)
}

// deviceName is the header label of the selected device
func (a *App) deviceName() string {
	id := a.ctrl.DeviceID()
	if id == "" {
		return ""
	}
	if d, ok := a.state.Device.Data(); ok && d.Name != "" {
		return d.Name
	}
	if d, ok := session.FindDevice(a.devices, id); ok && d.Name != "" {
		return d.Name
	}
	return id
}

var pageIcons = map[monitor.Page]icons.Icon{
	monitor.PageDashboard:  icons.Dashboard,
	monitor.PageSystem:     icons.System,
	monitor.PageInterfaces: icons.Interfaces,
	monitor.PageAlerts:     icons.Alerts,
	monitor.PageLogs:       icons.Logs,
	monitor.PageAddresses:  icons.Addresses,
	monitor.PageServices:   icons.Services,
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s %s ", icons.App.String(), titleStyle.Render("MikroDash"),
		styles.Subtitle.Render(pageIcons[a.page].String()+" "+a.page.Title()))

	rightText := ""
	if name := a.deviceName(); name != "" {
		rightText = " " + contextStyle.Render(icons.Device.String()+" "+name) + " "
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText))
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderNotice shows the current notice, or an empty line
func (a *App) renderNotice() string {
	if a.notice == nil {
		return ""
	}
	return " " + widgets.StatusText(a.notice.Text, a.notice.Level)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var bindings []key.Binding
	switch a.screen {
	case ScreenPicker:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓", "Navigate")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),
		}
	case ScreenConfirm:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("left"), key.WithHelp("←→", "Choose")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Confirm")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),
		}
	default:
		bindings = a.keys.pageBindings(a.page)
	}

	rightText := a.pollStatus()
	if rightText != "" {
		rightText = " " + statusStyle.Render(rightText) + " "
	}

	// Drop shortcuts from the end until the line fits.
	leftText := ""
	for n := len(bindings); n >= 0; n-- {
		leftText = " " + renderBindings(bindings[:n]) + " "
		if lipgloss.Width(leftText)+lipgloss.Width(rightText)+4 <= width {
			break
		}
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText))
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

func renderBindings(bindings []key.Binding) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+labelStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// pollStatus describes polling state and data age for the footer
func (a *App) pollStatus() string {
	switch {
	case a.ctrl.DeviceID() == "":
		return ""
	case a.paused:
		return icons.Pause.String() + " Paused"
	case a.lastUpdate.IsZero():
		return icons.Refresh.String() + " Loading"
	}

	status := "Updated " + a.formatTimeSince(a.lastUpdate)
	if iv := a.ctrl.Interval(); iv > 0 {
		status += " · every " + iv.String()
	}
	return status
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := a.now().Sub(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}

	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header, notice line and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderNotice())
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI and blocks until the user quits
func Run(ctx context.Context, opts Options) error {
	app := New(ctx, opts)
	defer app.cancel()

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	app.ctrl.Stop()
	return err
}
