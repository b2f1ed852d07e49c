package cmd

import (
	"github.com/hoppxi/hyprwall/internal/selector"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Open the wallpaper form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := selector.New(selector.Zenity{}, newSetter(settings))
		return app.Run(cmd.Context())
	},
}
