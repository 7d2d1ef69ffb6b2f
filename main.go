// ABOUTME: Entry point for the mikrodash CLI
// ABOUTME: Terminal dashboard and scripting commands for router monitoring

package main

import (
	"fmt"
	"os"

	"github.com/mikrodash/mikrodash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
