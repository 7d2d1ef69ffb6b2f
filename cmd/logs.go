// ABOUTME: Logs command printing the router log and its topic distribution
// ABOUTME: Filters by topic and message text, case-insensitively

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mikrodash/mikrodash/internal/monitor"
	"github.com/mikrodash/mikrodash/internal/view"
)

var (
	logTopic   string
	logMessage string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the router log of a device",
	Long: `Print the router log of the selected device followed by the
distribution of log topics. The distribution always covers the whole log,
regardless of filters.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogs(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	logsCmd.Flags().StringVar(&logTopic, "topic", "", "Only entries whose topics contain this text")
	logsCmd.Flags().StringVar(&logMessage, "message", "", "Only entries whose message contains this text")
	rootCmd.AddCommand(logsCmd)
}

// runLogs prints the filtered log and returns the exit code
func runLogs(ctx context.Context, w io.Writer) int {
	opts := monitor.PanelOptions{LogFilter: view.LogFilter{Topic: logTopic, Message: logMessage}}
	return runPage(ctx, w, monitor.PageLogs, monitor.LoadOptions{}, opts)
}
