// ABOUTME: Show command printing one kind of router data
// ABOUTME: Covers system resources, interfaces, addresses, ARP and the optional services

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mikrodash/mikrodash/internal/monitor"
)

var showInterface string

// showTarget is the page a resource lives on and the panels that show it.
type showTarget struct {
	page   monitor.Page
	panels []string
}

var showTargets = map[string]showTarget{
	"system":     {page: monitor.PageSystem},
	"interfaces": {page: monitor.PageInterfaces},
	"addresses":  {page: monitor.PageAddresses},
	"ip":         {page: monitor.PageAddresses, panels: []string{"ip"}},
	"arp":        {page: monitor.PageAddresses, panels: []string{"arp"}},
	"services":   {page: monitor.PageServices},
	"dhcp":       {page: monitor.PageServices, panels: []string{"dhcp"}},
	"firewall":   {page: monitor.PageServices, panels: []string{"firewall"}},
	"wireless":   {page: monitor.PageServices, panels: []string{"wireless"}},
	"capsman":    {page: monitor.PageServices, panels: []string{"capsman"}},
}

func showNames() []string {
	names := make([]string, 0, len(showTargets))
	for name := range showTargets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var showCmd = &cobra.Command{
	Use:   "show RESOURCE",
	Short: "Show one kind of router data",
	Long: `Fetch and print one kind of router data for the selected device.

Resources: ` + strings.Join(showNames(), ", ") + `

DHCP, firewall, wireless and CAPsMAN are optional on the backend; when a
device does not support them the command reports them as not available
and exits 1.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: showNames(),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runShow(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	showCmd.Flags().StringVar(&showInterface, "interface", "", "Interface whose traffic to chart (interfaces only, default: first running)")
	rootCmd.AddCommand(showCmd)
}

// runShow prints the panels of one resource and returns the exit code
func runShow(ctx context.Context, w io.Writer, resource string) int {
	target, ok := showTargets[strings.ToLower(resource)]
	if !ok {
		fmt.Fprintf(w, "Error: unknown resource %q (expected one of: %s)\n", resource, strings.Join(showNames(), ", "))
		return exitError
	}
	load := monitor.LoadOptions{Interface: showInterface}
	return runPage(ctx, w, target.page, load, monitor.PanelOptions{}, target.panels...)
}
