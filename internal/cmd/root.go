package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoppxi/hyprwall/internal/logger"
	"github.com/hoppxi/hyprwall/internal/manager"
	"github.com/spf13/cobra"
)

var Version = "0.2.0"

var (
	configPath string
	noLogFile  bool

	settings  manager.Settings
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:               "hyprwall",
	Version:           Version,
	Short:             "Set the Hyprland wallpaper and keep hyprlock in sync",
	Long:              "hyprwall writes hyprpaper.conf for every monitor, restarts hyprpaper and updates the hyprlock background path. Without a subcommand it opens the wallpaper form.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	RunE: func(cmd *cobra.Command, args []string) error {
		return selectCmd.RunE(cmd, args)
	},
}

func addGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().StringVar(&configPath, "config", os.Getenv("HYPRWALL_CONFIG"), "config file (default $XDG_CONFIG_HOME/hypr/hyprwall.yaml)")
	c.PersistentFlags().BoolVar(&noLogFile, "no-log-file", false, "log to stderr only")
}

// prepare loads the settings and sets up logging before any command runs.
func prepare(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		manager.Config.SetPath(configPath)
		// Chained processes read the same file.
		os.Setenv("HYPRWALL_CONFIG", configPath)
	}

	if cmd.Name() == "setup" {
		logCloser = logger.Setup("")
		return nil
	}

	s, err := manager.Config.Settings()
	if err != nil {
		logger.Setup("")
		return err
	}
	settings = s

	file := s.LogFile
	if noLogFile {
		file = ""
	}
	logCloser = logger.Setup(file)

	// Only one process may own a lumberjack file. Chained processes log to
	// stderr, which the runner copies into this process's log.
	if logCloser != nil {
		os.Setenv("HYPRWALL_LOG_FILE", "")
	}
	return nil
}

func run(c *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := c.ExecuteContext(ctx)
	stop()

	if logCloser != nil {
		logCloser.Close()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func Execute() {
	run(rootCmd)
}

// ExecuteSync runs the hyprlock syncer as a program of its own.
func ExecuteSync() {
	c := newSyncCmd("hyprlock-sync")
	c.Version = Version
	c.SilenceUsage = true
	c.SilenceErrors = true
	c.PersistentPreRunE = prepare
	addGlobalFlags(c)

	run(c)
}

func init() {
	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(newSyncCmd("sync"))
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(setupCmd)
}
