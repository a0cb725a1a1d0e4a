package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okapiworks/roster/internal/config"
	"github.com/okapiworks/roster/internal/logbook"
	"github.com/okapiworks/roster/internal/reconcile"
	"github.com/okapiworks/roster/internal/store"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan the staff tree and merge new entries into the roster",
		Long: `Scan walks the staff tree (by default the configured tree directory),
parses every employee record it finds, and merges new projects,
departments, and employees into the roster file. Existing entries are
left untouched and nothing is ever removed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			cfg, err := config.New(cwd)
			if err != nil {
				return err
			}
			root := cfg.TreeRoot()
			if len(args) == 1 {
				root = args[0]
			}

			book, err := logbook.New(cfg.LogPath())
			if err != nil {
				return err
			}
			defer book.Close()

			st := store.New(cfg.RosterPath(), cfg.LockPath())
			if err := st.Acquire(); err != nil {
				return err
			}
			defer func() {
				if err := st.Release(); err != nil {
					book.Warn("release lock: %v", err)
				}
			}()

			roster, err := st.Load()
			if err != nil {
				return err
			}
			reconciler := reconcile.New()
			reconciler.DefaultAgent = cfg.DefaultAgentType()
			summary := reconciler.Run(root, roster)
			if err := st.Save(roster); err != nil {
				return err
			}

			book.Info("scan %s: %d projects added, %d employees added, %d issues",
				root, summary.ProjectsAdded, summary.EmployeesAdded, len(summary.Issues))
			for _, issue := range summary.Issues {
				book.Warn("%s", issue)
			}

			fmt.Fprint(cmd.OutOrStdout(), renderSummary(root, summary))
			return nil
		},
	}
}
