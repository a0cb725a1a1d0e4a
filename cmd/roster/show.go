package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okapiworks/roster/internal/config"
	"github.com/okapiworks/roster/internal/store"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current roster",
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
			st := store.New(cfg.RosterPath(), cfg.LockPath())
			roster, err := st.Load()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRoster(roster))
			return nil
		},
	}
}
