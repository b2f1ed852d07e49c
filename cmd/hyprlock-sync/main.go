// hyprlock-sync copies the wallpaper from hyprpaper.conf into hyprlock.conf.
// hyprwall runs it after every wallpaper change.
package main

import "github.com/hoppxi/hyprwall/internal/cmd"

func main() {
	cmd.ExecuteSync()
}
