package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/hoppxi/hyprwall/internal/hyprland"
	"github.com/hoppxi/hyprwall/internal/manager"
	"github.com/spf13/cobra"
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List the monitors a wallpaper would be applied to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		monitors, err := hyprland.NewClient(manager.Exec, settings.Hyprctl).Monitors(cmd.Context())
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(monitors, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		for _, m := range monitors {
			fmt.Printf("%s\t%dx%d\t%s\n", m.Name, m.Width, m.Height, m.Description)
		}
		return nil
	},
}

func init() {
	monitorsCmd.Flags().Bool("json", false, "print as JSON")
}
