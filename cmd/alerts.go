// ABOUTME: Alerts commands: list with filters, resolve one, resolve all active
// ABOUTME: Exit codes let CI fail while a device has active alerts

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/monitor"
	"github.com/mikrodash/mikrodash/internal/view"
)

var (
	alertStatus   string
	alertSeverity string
	assumeYes     bool
)

// confirmResolveAll asks before a bulk resolve; replaced in tests.
var confirmResolveAll = func(count int) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Are you sure you want to resolve all %d active alerts?", count)).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List the alerts of a device",
	Long: `List the alerts of the selected device, newest first.

Exits 1 when any listed alert is still active, or when alerts could not be
loaded; 2 on errors.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAlerts(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve ALERT_ID",
	Short: "Resolve one alert",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runResolve(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var resolveAllCmd = &cobra.Command{
	Use:   "resolve-all",
	Short: "Resolve every active alert of a device",
	Long: `Resolve every active alert of the selected device concurrently.

Asks for confirmation unless --yes is given. Exits 1 when only some of the
alerts could be resolved.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runResolveAll(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	alertsCmd.Flags().StringVar(&alertStatus, "status", view.FilterAll, "Filter by status: "+strings.Join(view.StatusFilters, ", "))
	alertsCmd.Flags().StringVar(&alertSeverity, "severity", view.FilterAll, "Filter by severity: "+strings.Join(view.SeverityFilters, ", "))
	resolveAllCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	alertsCmd.AddCommand(resolveCmd, resolveAllCmd)
	rootCmd.AddCommand(alertsCmd)
}

// alertFilter validates the filter flags.
func alertFilter() (view.AlertFilter, error) {
	status := strings.ToLower(alertStatus)
	if !slices.Contains(view.StatusFilters, status) {
		return view.AlertFilter{}, fmt.Errorf("invalid --status %q (expected one of: %s)", alertStatus, strings.Join(view.StatusFilters, ", "))
	}
	severity := strings.ToLower(alertSeverity)
	if !slices.Contains(view.SeverityFilters, severity) {
		return view.AlertFilter{}, fmt.Errorf("invalid --severity %q (expected one of: %s)", alertSeverity, strings.Join(view.SeverityFilters, ", "))
	}
	return view.AlertFilter{Status: status, Severity: severity}, nil
}

// runAlerts lists filtered alerts and returns the exit code
func runAlerts(ctx context.Context, w io.Writer) int {
	filter, err := alertFilter()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	cfg, c, err := setup()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	d, err := resolveDevice(ctx, c, cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	state := loadState(ctx, c, monitor.PageAlerts, d.ID, monitor.LoadOptions{})
	panels := state.Panels(monitor.PageAlerts, monitor.PanelOptions{AlertFilter: filter}, time.Now())
	fmt.Fprintln(w, formatPanels(d, monitor.PageAlerts, panels))

	if code := panelsExitCode(panels); code != exitOK {
		return code
	}
	alerts, _ := state.Alerts.Data()
	if len(view.ActiveAlertIDs(filter.Apply(alerts))) > 0 {
		return exitPartial
	}
	return exitOK
}

// actionReport is the JSON form of an action outcome.
type actionReport struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Resolved int      `json:"resolved,omitempty"`
	Total    int      `json:"total,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Failed   []string `json:"failed,omitempty"` // collectors of a partial refresh
}

func printAction(w io.Writer, report actionReport) {
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(report))
		return
	}
	fmt.Fprintln(w, report.Message)
	for _, e := range report.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
}

// runResolve resolves one alert and returns the exit code
func runResolve(ctx context.Context, w io.Writer, id string) int {
	_, c, err := setup()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	notice, err := monitor.ResolveAlert(ctx, c, client.ID(id))
	printAction(w, actionReport{Success: err == nil, Message: notice.Text})
	if err != nil {
		return exitError
	}
	return exitOK
}

// runResolveAll resolves every active alert of the device and returns the exit code
func runResolveAll(ctx context.Context, w io.Writer) int {
	cfg, c, err := setup()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	d, err := resolveDevice(ctx, c, cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	alerts, err := c.Alerts(ctx, d.ID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	ids := view.ActiveAlertIDs(alerts)

	if len(ids) > 0 && !assumeYes {
		ok, err := confirmResolveAll(len(ids))
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return exitError
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled")
			return exitOK
		}
	}

	result := monitor.ResolveAll(ctx, c, ids)
	report := actionReport{
		Success:  result.Resolved == result.Total,
		Message:  result.Notice().Text,
		Resolved: result.Resolved,
		Total:    result.Total,
	}
	for _, err := range result.Errors {
		report.Errors = append(report.Errors, err.Error())
	}
	printAction(w, report)

	switch {
	case result.Resolved == result.Total:
		return exitOK
	case result.Resolved > 0:
		return exitPartial
	default:
		return exitError
	}
}
