// cmd/roster/main.go
//
// Entry point for the roster CLI.
//
// Subcommands:
//   roster init   create the .roster workspace in the current directory
//   roster scan   reconcile the staff tree into the roster file
//   roster show   print the current roster
//   roster log    show recent reconciliation activity
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Reconcile an on-disk AI staff tree into a roster",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newInitCmd(), newScanCmd(), newShowCmd(), newLogCmd())
	return cmd
}
