// ABOUTME: Root command for the mikrodash CLI
// ABOUTME: Handles global flags, configuration and the shared backend client

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/config"
	"github.com/mikrodash/mikrodash/internal/logger"
	"github.com/mikrodash/mikrodash/internal/monitor"
	"github.com/mikrodash/mikrodash/internal/session"
)

// Exit codes shared by every non-interactive command.
const (
	exitOK      = 0
	exitPartial = 1 // data was returned but some of it is unavailable or failed
	exitError   = 2
)

var (
	envFile      string
	apiURL       string
	dashboardURL string
	deviceID     string
	allProxy     string
	logLevel     string
	timeout      time.Duration
	jsonOutput   bool
)

// rootCmd is the base command. Without a subcommand it opens the dashboard.
var rootCmd = &cobra.Command{
	Use:   "mikrodash",
	Short: "Terminal dashboard for MikroTik router monitoring",
	Long: `mikrodash shows the devices, resources, interfaces, alerts and logs
collected by a router monitoring backend.

Run without a subcommand to open the interactive dashboard. The other
commands print one snapshot and exit, for scripts and CI checks.

Environment Variables:
  MIKRODASH_API_URL           Backend API URL (default: http://localhost:5000)
  MIKRODASH_URL               Dashboard URL whose ?device= selects the device
  MIKRODASH_DEVICE            Device ID to show
  MIKRODASH_REFRESH_INTERVAL  Polling interval, e.g. 30s (0 disables polling)
  MIKRODASH_TIMEOUT           Request timeout (default: 30s)
  MIKRODASH_ALL_PROXY         ssh+socks5:// proxy for reaching the backend
  MIKRODASH_CONFIG_DIR        Directory for debug.log and recent devices
  MIKRODASH_NERD_FONTS        Force Nerd Font icons on (1) or off (0)
  LOG_LEVEL, LOG_FORMAT       Logging level and format (text or json)

Exit Codes:
  0  OK
  1  Partial: some data unavailable or some actions failed
  2  Error`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launchDashboard(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "Environment file to load")
	flags.StringVar(&apiURL, "api-url", "", "Backend API URL (overrides MIKRODASH_API_URL)")
	flags.StringVar(&dashboardURL, "url", "", "Dashboard URL carrying a ?device= parameter (overrides MIKRODASH_URL)")
	flags.StringVar(&deviceID, "device", "", "Device ID to show (overrides MIKRODASH_DEVICE)")
	flags.StringVar(&allProxy, "all-proxy", "", "ssh+socks5:// proxy URL (overrides MIKRODASH_ALL_PROXY)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	flags.DurationVar(&timeout, "timeout", 0, "Request timeout (overrides MIKRODASH_TIMEOUT)")
	flags.BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// loadConfig reads the environment and applies the global flags on top.
// interval is applied when non-nil.
func loadConfig(interval *time.Duration) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	err = cfg.Apply(config.Overrides{
		APIURL:          apiURL,
		DashboardURL:    dashboardURL,
		DeviceID:        deviceID,
		AllProxy:        allProxy,
		LogLevel:        logLevel,
		RequestTimeout:  timeout,
		RefreshInterval: interval,
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds the backend client, tunnelling through the proxy when one
// is configured.
func newClient(cfg *config.Config) (*client.Client, error) {
	opts := []client.Option{client.WithTimeout(cfg.RequestTimeout)}
	if cfg.AllProxy != "" {
		transport, err := client.ProxyTransport(cfg.AllProxy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithTransport(transport))
	}
	return client.New(cfg.APIURL, opts...), nil
}

// setup loads configuration, logs to stderr and connects a client. It is
// the common preamble of the snapshot commands.
func setup() (*config.Config, *client.Client, error) {
	cfg, err := loadConfig(nil)
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	c, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, c, nil
}

// resolveDevice picks the device a snapshot command reports on: the
// --device flag or MIKRODASH_DEVICE, then the dashboard URL, then the first
// device the backend knows.
func resolveDevice(ctx context.Context, api monitor.API, cfg *config.Config) (client.Device, error) {
	devices, err := api.Devices(ctx)
	if err != nil {
		return client.Device{}, fmt.Errorf("failed to list devices: %w", err)
	}

	requested := cfg.DeviceID
	if requested == "" {
		sess, err := session.New(cfg.DashboardURL)
		if err != nil {
			return client.Device{}, err
		}
		requested = sess.DeviceID()
	}

	id, err := session.ResolveDevice(devices, requested)
	if err != nil {
		return client.Device{}, err
	}
	d, _ := session.FindDevice(devices, id)
	slog.Debug("Resolved device", "device_id", d.ID, "name", d.Name)
	return d, nil
}

// deviceLabel names a device for human output.
func deviceLabel(d client.Device) string {
	if d.Name == "" {
		return d.ID
	}
	return d.Name
}
