package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hoppxi/hyprwall/internal/manager"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate hyprwall.yaml interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()
		path := manager.Config.Path()

		if _, err := os.Stat(path); err == nil {
			if !confirm(reader, out, fmt.Sprintf("%s already exists. Overwrite with new settings?", path)) {
				return nil
			}
		}

		// Offer whatever is in effect now; a broken file falls back to defaults.
		current, err := manager.Config.Settings()
		if err != nil {
			current, _ = manager.DefaultSettings()
		}

		if err := writeConfig(path, askSettings(reader, out, current)); err != nil {
			return err
		}

		fmt.Fprintf(out, "Config written to %s\n", path)
		return nil
	},
}

func askSettings(r *bufio.Reader, w io.Writer, def manager.Settings) manager.Settings {
	s := manager.Settings{}
	s.HyprpaperConf = prompt(r, w, "hyprpaper config", def.HyprpaperConf)
	s.HyprlockConf = prompt(r, w, "hyprlock config", def.HyprlockConf)
	s.Daemon = prompt(r, w, "Wallpaper daemon", def.Daemon)
	s.Hyprctl = prompt(r, w, "hyprctl binary", def.Hyprctl)
	s.SyncerCommand = prompt(r, w, "Syncer command (empty = hyprlock-sync)", def.SyncerCommand)
	s.WallpapersPath = prompt(r, w, "Wallpapers directory", def.WallpapersPath)
	s.LogFile = prompt(r, w, "Log file (empty = stderr only)", def.LogFile)
	s.Notify = confirm(r, w, "Send desktop notifications after syncing hyprlock?")
	return s
}

func writeConfig(path string, s manager.Settings) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0644)
}

func prompt(r *bufio.Reader, w io.Writer, label, defaultValue string) string {
	fmt.Fprintf(w, "%s [%s]: ", label, defaultValue)
	input, _ := r.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

func confirm(r *bufio.Reader, w io.Writer, message string) bool {
	fmt.Fprintf(w, "%s (y/N): ", message)
	input, _ := r.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
