// ABOUTME: Devices command listing the routers known to the backend
// ABOUTME: Shows connection state so broken devices stand out

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/view"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List monitored devices",
	Long:  `List the devices configured on the backend. Exits 1 when any enabled device reports a connection error.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runDevices(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

// runDevices lists devices and returns the exit code
func runDevices(ctx context.Context, w io.Writer) int {
	_, c, err := setup()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	devices, err := c.Devices(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if IsJSONOutput() {
		if devices == nil {
			devices = []client.Device{}
		}
		fmt.Fprintln(w, formatJSON(map[string]any{"devices": devices}))
	} else {
		fmt.Fprintln(w, formatDevicesHuman(devices, time.Now()))
	}

	for _, d := range devices {
		if d.Enabled && d.Error != "" {
			return exitPartial
		}
	}
	return exitOK
}

// deviceStatus summarises the connection state of a device.
func deviceStatus(d client.Device) string {
	switch {
	case !d.Enabled:
		return "Disabled"
	case d.Error != "":
		return "Error: " + d.Error
	case d.LastConnected == "":
		return "Never connected"
	default:
		return "Connected"
	}
}

// formatDevicesHuman formats the device list for human readability
func formatDevicesHuman(devices []client.Device, now time.Time) string {
	if len(devices) == 0 {
		return "No devices configured on the backend."
	}
	tbl := view.Table{Columns: []string{"ID", "Name", "Host", "Status", "Last Connected"}}
	for _, d := range devices {
		last := "Never"
		if d.LastConnected != "" {
			last = view.FormatTime(d.LastConnected, now)
		}
		tbl.Rows = append(tbl.Rows, []view.Cell{
			{Text: d.ID},
			{Text: d.Name},
			{Text: fmt.Sprintf("%s:%d", d.Host, d.Port)},
			{Text: deviceStatus(d)},
			{Text: last},
		})
	}
	return formatTable(tbl)
}
