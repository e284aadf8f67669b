// Command hqd runs the hq message queue service: the HTTP API, the
// background lease sweeper, the Prometheus metrics endpoint, and
// optionally the dashboard, all backed by a single SQLite database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hqd",
		Short: "hq message queue daemon",
		Long:  "hqd runs the hq HTTP API, lease sweeper, and optional dashboard over a SQLite-backed queue store.",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
