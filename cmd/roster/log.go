package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okapiworks/roster/internal/config"
	"github.com/okapiworks/roster/internal/logbook"
)

func newLogCmd() *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent reconciliation activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			cfg, err := config.New(cwd)
			if err != nil {
				return err
			}
			book, err := logbook.New(cfg.LogPath())
			if err != nil {
				return err
			}
			defer book.Close()

			entries, total := book.Tail(lines)
			if total == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("no activity logged yet; run `roster scan` first"))
				return nil
			}
			for _, line := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if skipped := total - len(entries); skipped > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render(fmt.Sprintf("(%d earlier entries in %s)", skipped, book.Path())))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "number of entries to show")
	return cmd
}
