package cmd

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/hoppxi/hyprwall/internal/hyprland"
	"github.com/hoppxi/hyprwall/internal/manager"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-apply the wallpaper when monitors are added or removed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var mu sync.Mutex
		setter := newSetter(settings)

		manager.Config.Watch(func(s manager.Settings) {
			log.Println("Config changed, reloading settings")
			mu.Lock()
			setter = newSetter(s)
			mu.Unlock()
		})

		events, err := hyprland.Subscribe(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Watching for monitor changes. Press Ctrl+C to stop.")

		for ev := range events {
			if !hyprland.IsMonitorChange(ev.Name) {
				continue
			}
			log.Printf("Monitor change: %s", ev.Raw)

			mu.Lock()
			s := setter
			mu.Unlock()

			monitors, err := s.Reapply(ctx)
			if err != nil {
				log.Printf("Failed to re-apply wallpaper: %v", err)
				continue
			}
			log.Printf("Re-applied wallpaper on %s", strings.Join(monitors, ", "))
		}

		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("hyprland event socket closed")
	},
}
