package cmd

import (
	"os"
	"os/exec"

	"github.com/hoppxi/hyprwall/internal/hyprland"
	"github.com/hoppxi/hyprwall/internal/hyprpaper"
	"github.com/hoppxi/hyprwall/internal/manager"
	"github.com/hoppxi/hyprwall/internal/notify"
	"github.com/hoppxi/hyprwall/internal/syncer"
	"github.com/hoppxi/hyprwall/internal/wallpaper"
)

func newSetter(s manager.Settings) *wallpaper.Setter {
	hypr := hyprland.NewClient(manager.Exec, s.Hyprctl)
	exe, _ := os.Executable()

	return &wallpaper.Setter{
		Monitors:       hypr,
		Daemon:         &hyprpaper.Daemon{Name: s.Daemon, Runner: manager.Exec, Hypr: hypr},
		Runner:         manager.Exec,
		ConfigFile:     s.HyprpaperConf,
		SyncerCommand:  wallpaper.ResolveSyncer(s.SyncerCommand, exe, exec.LookPath),
		WallpapersPath: s.WallpapersPath,
	}
}

func newSyncer(s manager.Settings) *syncer.Syncer {
	sy := &syncer.Syncer{
		HyprpaperConf: s.HyprpaperConf,
		HyprlockConf:  s.HyprlockConf,
	}
	if s.Notify {
		sy.Notifier = notify.New("hyprwall")
	}
	return sy
}
