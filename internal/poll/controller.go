// ABOUTME: Poll controller driving periodic fetch cycles for the selected device
// ABOUTME: States stopped/running/suspended with a cancellable refresh timer

package poll

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// DefaultInterval is the refresh period used when none is configured.
const DefaultInterval = 60 * time.Second

// State is the lifecycle state of a Controller.
type State int

const (
	// StateStopped: no device selected, or Stop was called.
	StateStopped State = iota
	// StateRunning: cycles run on the timer and on demand.
	StateRunning
	// StateSuspended: the view is hidden; the timer is cancelled.
	StateSuspended
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// Reason says what started a cycle.
type Reason int

const (
	ReasonSelect Reason = iota
	ReasonTick
	ReasonResume
	ReasonManual
)

func (r Reason) String() string {
	switch r {
	case ReasonSelect:
		return "select"
	case ReasonTick:
		return "tick"
	case ReasonResume:
		return "resume"
	case ReasonManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Cycle identifies one fetch cycle. Seq increases strictly across the
// lifetime of a Controller so consumers can discard late results.
type Cycle struct {
	Seq      uint64
	DeviceID string
	Reason   Reason
	Started  time.Time
}

// Runner performs the fetches of one cycle. RunCycle must not return until
// every fetch has settled; it never reports an error.
type Runner interface {
	RunCycle(ctx context.Context, c Cycle)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, c Cycle)

func (f RunnerFunc) RunCycle(ctx context.Context, c Cycle) { f(ctx, c) }

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the real clock.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithInterval sets the initial refresh interval. Zero or less disables the timer.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller schedules fetch cycles for the currently selected device.
//
// Stopped -> Running on Select; Running -> Suspended when hidden;
// Suspended -> Running when visible again, with one immediate cycle.
// Manual refreshes run out of band and leave the timer alone. Cycles that are
// already in flight are never aborted; they finish and their results are
// filtered by Seq and DeviceID on the consumer side.
type Controller struct {
	ctx    context.Context
	runner Runner
	clock  Clock
	logger *slog.Logger

	mu       sync.Mutex
	state    State
	deviceID string
	interval time.Duration
	hidden   bool
	seq      uint64
	stopTick chan struct{}

	inflight sync.WaitGroup
}

// New creates a stopped Controller. Cycles run with ctx as their parent.
func New(ctx context.Context, runner Runner, opts ...Option) *Controller {
	c := &Controller{
		ctx:      ctx,
		runner:   runner,
		clock:    realClock{},
		logger:   slog.Default(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// DeviceID returns the selected device.
func (c *Controller) DeviceID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deviceID
}

// Interval returns the refresh interval.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Seq returns the sequence number of the most recently launched cycle.
func (c *Controller) Seq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Current reports whether a cycle's results still belong to the selected device.
func (c *Controller) Current(cycle Cycle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != StateStopped && cycle.DeviceID == c.deviceID
}

// Select switches to deviceID, runs one cycle immediately and reschedules the
// timer. While suspended the device is recorded and the cycle is deferred
// until the view becomes visible. Selecting the current device is a no-op;
// an empty id stops the controller.
func (c *Controller) Select(deviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if deviceID == "" {
		c.stopLocked()
		return
	}
	if deviceID == c.deviceID && c.state != StateStopped {
		return
	}

	c.deviceID = deviceID
	c.stopTickerLocked()

	if c.hidden {
		c.state = StateSuspended
		c.logger.Debug("Device selected while hidden", "device_id", deviceID)
		return
	}

	c.state = StateRunning
	c.logger.Info("Polling device", "device_id", deviceID, "interval", c.interval)
	c.launchLocked(ReasonSelect)
	c.startTickerLocked()
}

// SetInterval changes the refresh period. It does not run a cycle.
func (c *Controller) SetInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d == c.interval {
		return
	}
	c.interval = d
	if c.state == StateRunning {
		c.startTickerLocked()
	}
}

// SetVisible suspends polling when the view is hidden and resumes it, with
// exactly one immediate cycle, when the view is shown again.
func (c *Controller) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hidden = !visible

	switch {
	case !visible && c.state == StateRunning:
		c.stopTickerLocked()
		c.state = StateSuspended
		c.logger.Debug("Polling suspended", "device_id", c.deviceID)

	case visible && c.state == StateSuspended:
		c.state = StateRunning
		c.logger.Debug("Polling resumed", "device_id", c.deviceID)
		c.launchLocked(ReasonResume)
		c.startTickerLocked()
	}
}

// Refresh runs one cycle now without touching the timer. It returns false
// when no device is selected.
func (c *Controller) Refresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateStopped {
		return false
	}
	c.launchLocked(ReasonManual)
	return true
}

// Stop cancels the timer. In-flight cycles finish on their own.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Wait blocks until every cycle started so far has returned.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) stopLocked() {
	c.stopTickerLocked()
	if c.state != StateStopped {
		c.logger.Debug("Polling stopped", "device_id", c.deviceID)
	}
	c.state = StateStopped
	c.deviceID = ""
}

func (c *Controller) launchLocked(reason Reason) {
	c.seq++
	cycle := Cycle{
		Seq:      c.seq,
		DeviceID: c.deviceID,
		Reason:   reason,
		Started:  c.clock.Now(),
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				c.logger.Error("Poll cycle panicked",
					"seq", cycle.Seq,
					"device_id", cycle.DeviceID,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		c.logger.Debug("Poll cycle started", "seq", cycle.Seq, "device_id", cycle.DeviceID, "reason", cycle.Reason.String())
		c.runner.RunCycle(c.ctx, cycle)
		c.logger.Debug("Poll cycle finished", "seq", cycle.Seq, "latency_ms", c.clock.Now().Sub(cycle.Started).Milliseconds())
	}()
}

func (c *Controller) startTickerLocked() {
	c.stopTickerLocked()
	if c.interval <= 0 {
		return
	}

	ticker := c.clock.Ticker(c.interval)
	stop := make(chan struct{})
	c.stopTick = stop

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-c.ctx.Done():
				return
			case <-ticker.Chan():
				c.mu.Lock()
				// The timer may have been replaced while this tick was pending.
				if c.stopTick != stop || c.state != StateRunning {
					c.mu.Unlock()
					return
				}
				c.launchLocked(ReasonTick)
				c.mu.Unlock()
			}
		}
	}()
}

func (c *Controller) stopTickerLocked() {
	if c.stopTick != nil {
		close(c.stopTick)
		c.stopTick = nil
	}
}
