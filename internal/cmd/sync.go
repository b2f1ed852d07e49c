package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCmd(use string) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: "Copy the hyprpaper preload path into hyprlock.conf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sy := newSyncer(settings)

			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				if _, err := sy.Sync(); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
				return sy.Watch(cmd.Context())
			}

			res, err := sy.Sync()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}

	c.Flags().Bool("watch", false, "keep running and sync whenever hyprpaper.conf changes")
	return c
}
