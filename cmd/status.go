// ABOUTME: Status command for the mikrodash CLI
// ABOUTME: Prints the dashboard page of one device: status, resources, interfaces and alerts

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mikrodash/mikrodash/internal/monitor"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the dashboard of a device",
	Long: `Fetch the dashboard page of one device once and print it.

Exits 1 when any part of the dashboard could not be loaded, which makes it
usable as a health check.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStatus(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// runStatus fetches the dashboard page and returns the exit code
func runStatus(ctx context.Context, w io.Writer) int {
	return runPage(ctx, w, monitor.PageDashboard, monitor.LoadOptions{}, monitor.PanelOptions{})
}

// runPage prints one page of the resolved device, optionally narrowed to
// the panels named in ids.
func runPage(ctx context.Context, w io.Writer, page monitor.Page, load monitor.LoadOptions, opts monitor.PanelOptions, ids ...string) int {
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

	panels := selectPanels(loadPanels(ctx, c, page, d.ID, load, opts), ids...)
	fmt.Fprintln(w, formatPanels(d, page, panels))
	return panelsExitCode(panels)
}
