package cmd

import (
	"fmt"
	"strings"

	"github.com/hoppxi/hyprwall/internal/wallpaper"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set [image]",
	Short: "Set the wallpaper without the form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		setter := newSetter(settings)

		random, _ := cmd.Flags().GetBool("random")
		selectFile, _ := cmd.Flags().GetBool("select")

		var (
			path     string
			monitors []string
			err      error
		)

		switch {
		case len(args) == 1:
			path = args[0]
			monitors, err = setter.Set(ctx, path)
		case random:
			path, monitors, err = setter.SetRandom(ctx)
		case selectFile:
			var ok bool
			path, ok, err = wallpaper.SelectFile(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No file selected.")
				return nil
			}
			monitors, err = setter.Set(ctx, path)
		default:
			return fmt.Errorf("give an image path, --random or --select")
		}

		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wallpaper set to %s on %s\n", path, strings.Join(monitors, ", "))
		return nil
	},
}

func init() {
	setCmd.Flags().Bool("random", false, "pick a random image from wallpapers_path")
	setCmd.Flags().Bool("select", false, "pick the image with the file chooser")
}
