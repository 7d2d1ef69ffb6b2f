// ABOUTME: Refresh command asking the backend to re-poll a device now
// ABOUTME: Reports collectors that failed and exits 1 on a partial refresh

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

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Ask the backend to re-poll a device",
	Long: `Trigger an immediate collection on the backend for the selected device.

Exits 1 when some collectors failed and 2 when the refresh was rejected.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRefresh(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

// runRefresh triggers a backend refresh and returns the exit code
func runRefresh(ctx context.Context, w io.Writer) int {
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

	out := monitor.Refresh(ctx, c, d.ID)
	printAction(w, actionReport{Success: out.Err == nil && len(out.Failed) == 0, Message: out.Notice.Text, Failed: out.Failed})

	switch {
	case out.Err != nil:
		return exitError
	case len(out.Failed) > 0:
		return exitPartial
	default:
		return exitOK
	}
}
