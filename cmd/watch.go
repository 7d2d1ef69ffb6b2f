// ABOUTME: Watch command polling a device headlessly on the dashboard schedule
// ABOUTME: Prints one summary line per fetch cycle, as text or JSON lines

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikrodash/mikrodash/internal/logger"
	"github.com/mikrodash/mikrodash/internal/monitor"
	"github.com/mikrodash/mikrodash/internal/poll"
	"github.com/mikrodash/mikrodash/internal/view"
)

var (
	watchInterval time.Duration
	watchCount    int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll a device and print one line per refresh",
	Long: `Poll the dashboard data of the selected device on the refresh interval
and print a one-line summary after every cycle. With --json each line is a
JSON object.

Stops after --count cycles, or on Ctrl+C. The exit code reflects the last
cycle printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		var interval *time.Duration
		if cmd.Flags().Changed("interval") {
			interval = &watchInterval
		}
		exitCode := runWatch(ctx, os.Stdout, interval)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Polling interval (overrides MIKRODASH_REFRESH_INTERVAL)")
	watchCmd.Flags().IntVarP(&watchCount, "count", "n", 0, "Stop after this many cycles (0 runs until interrupted)")
	rootCmd.AddCommand(watchCmd)
}

// watchSample is the summary of one cycle.
type watchSample struct {
	Time         time.Time `json:"time"`
	Seq          uint64    `json:"seq"`
	DeviceID     string    `json:"device_id"`
	CPU          *float64  `json:"cpu_percent,omitempty"`
	Memory       *float64  `json:"memory_percent,omitempty"`
	Running      int       `json:"interfaces_running"`
	Interfaces   int       `json:"interfaces"`
	ActiveAlerts int       `json:"active_alerts"`
	Unavailable  []string  `json:"unavailable,omitempty"`
}

// runWatch polls until ctx ends or watchCount cycles were printed, and
// returns the exit code of the last cycle.
func runWatch(ctx context.Context, w io.Writer, interval *time.Duration) int {
	cfg, err := loadConfig(interval)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	c, err := newClient(cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	d, err := resolveDevice(ctx, c, cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	count := watchCount
	if cfg.RefreshInterval <= 0 && count == 0 {
		count = 1
	}

	var (
		mu     sync.Mutex
		seen   int
		code   = exitOK
		done   = make(chan struct{})
		state  = monitor.NewState()
		loader = monitor.NewLoader(c)
	)

	runner := poll.RunnerFunc(func(ctx context.Context, cycle poll.Cycle) {
		snap := loader.Load(ctx, monitor.PageDashboard, cycle.DeviceID, monitor.LoadOptions{})
		if ctx.Err() != nil {
			return
		}

		mu.Lock()
		defer mu.Unlock()
		if count > 0 && seen >= count {
			return
		}

		state.Apply(cycle.Seq, snap)
		panels := state.Panels(monitor.PageDashboard, monitor.PanelOptions{}, time.Now())
		sample := summarize(cycle, state, panels)
		fmt.Fprintln(w, formatSample(sample, deviceLabel(d)))

		code = panelsExitCode(panels)
		seen++
		if count > 0 && seen == count {
			close(done)
		}
	})

	ctrl := poll.New(ctx, runner, poll.WithInterval(cfg.RefreshInterval), poll.WithLogger(slog.Default()))
	ctrl.Select(d.ID)

	select {
	case <-ctx.Done():
	case <-done:
	}
	ctrl.Stop()
	ctrl.Wait()

	mu.Lock()
	defer mu.Unlock()
	return code
}

// summarize condenses the dashboard state after a cycle.
func summarize(cycle poll.Cycle, state *monitor.State, panels []view.Panel) watchSample {
	s := watchSample{Time: cycle.Started, Seq: cycle.Seq, DeviceID: cycle.DeviceID}

	if sys, ok := state.System.Data(); ok {
		cpu := sys.CPULoad
		mem := view.UsedPercent(sys.FreeMemory, sys.TotalMemory)
		s.CPU, s.Memory = &cpu, &mem
	}
	if ifaces, ok := state.Interfaces.Data(); ok {
		s.Interfaces = len(ifaces)
		s.Running = len(monitor.RunningInterfaces(ifaces))
	}
	if alerts, ok := state.Alerts.Data(); ok {
		s.ActiveAlerts = len(view.ActiveAlertIDs(alerts))
	}
	for _, p := range panels {
		if p.Warning != "" {
			s.Unavailable = append(s.Unavailable, p.ID)
		}
	}
	return s
}

// formatSample renders one cycle as a text line or a JSON line.
func formatSample(s watchSample, device string) string {
	if IsJSONOutput() {
		data, _ := json.Marshal(s)
		return string(data)
	}

	parts := []string{s.Time.Format(time.TimeOnly), device}
	if s.CPU != nil {
		parts = append(parts, "cpu "+view.FormatPercent(*s.CPU), "mem "+view.FormatPercent(*s.Memory))
	}
	parts = append(parts,
		fmt.Sprintf("interfaces %d/%d up", s.Running, s.Interfaces),
		fmt.Sprintf("alerts %d active", s.ActiveAlerts),
	)
	if len(s.Unavailable) > 0 {
		parts = append(parts, "unavailable: "+strings.Join(s.Unavailable, ", "))
	}
	return strings.Join(parts, "  ")
}
