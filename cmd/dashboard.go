// ABOUTME: Dashboard command launching the interactive TUI
// ABOUTME: Logs to a file under the config directory so the screen stays clean

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikrodash/mikrodash/internal/logger"
	"github.com/mikrodash/mikrodash/internal/monitor"
	"github.com/mikrodash/mikrodash/internal/session"
	"github.com/mikrodash/mikrodash/internal/tui"
	"github.com/mikrodash/mikrodash/internal/tui/recentdevices"
)

var (
	dashboardInterval time.Duration
	dashboardPage     string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the full-screen dashboard for one device.

Pages are switched with 1-7, the device with d. Data is re-fetched every
--interval while the terminal is focused; r asks the backend to re-poll
the device first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launchDashboard(cmd)
	},
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, dashboardCmd} {
		c.Flags().DurationVar(&dashboardInterval, "interval", 0, "Polling interval, 0 disables (overrides MIKRODASH_REFRESH_INTERVAL)")
		c.Flags().StringVar(&dashboardPage, "page", monitor.PageDashboard.String(), "Page to open: dashboard, system, interfaces, alerts, logs, addresses, services")
	}
	rootCmd.AddCommand(dashboardCmd)
}

func launchDashboard(cmd *cobra.Command) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var interval *time.Duration
	if cmd.Flags().Changed("interval") {
		interval = &dashboardInterval
	}
	return runDashboard(ctx, interval)
}

// runDashboard wires configuration, logging and session state into the TUI.
func runDashboard(ctx context.Context, interval *time.Duration) error {
	cfg, err := loadConfig(interval)
	if err != nil {
		return err
	}

	page, err := monitor.ParsePage(dashboardPage)
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(cfg.DebugLogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		logFile, _ = logger.OpenFile("")
	}
	defer logFile.Close()
	log := logger.Init(cfg.LogLevel, cfg.LogFormat, logFile)

	c, err := newClient(cfg)
	if err != nil {
		return err
	}
	sess, err := session.New(cfg.DashboardURL)
	if err != nil {
		return err
	}

	recent := recentdevices.New(cfg.ConfigDir)
	if _, err := recent.Load(); err != nil {
		log.Warn("Failed to read recent devices", "error", err)
	}

	log.Info("Starting dashboard", "api_url", cfg.APIURL, "page", page, "interval", cfg.RefreshInterval)
	return tui.Run(ctx, tui.Options{
		API:      c,
		Session:  sess,
		Recent:   recent,
		DeviceID: cfg.DeviceID,
		Page:     page,
		Interval: cfg.RefreshInterval,
		Logger:   log,
	})
}
