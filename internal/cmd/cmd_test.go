package cmd

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hoppxi/hyprwall/internal/manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCommandPrintsOutcome(t *testing.T) {
	dir := t.TempDir()
	paper := filepath.Join(dir, "hyprpaper.conf")
	lock := filepath.Join(dir, "hyprlock.conf")
	require.NoError(t, os.WriteFile(paper, []byte("preload=/home/u/pic.png\nwallpaper=DP-1, /home/u/pic.png\n"), 0o644))
	require.NoError(t, os.WriteFile(lock, []byte("background {\n    path = /old/pic.jpg\n}\n"), 0o644))

	settings = manager.Settings{HyprpaperConf: paper, HyprlockConf: lock}

	var out bytes.Buffer
	c := newSyncCmd("hyprlock-sync")
	c.SetOut(&out)
	c.SetArgs([]string{})

	require.NoError(t, c.Execute())
	assert.Equal(t, "Updated hyprlock path to: /home/u/pic.png\n", out.String())

	data, err := os.ReadFile(lock)
	require.NoError(t, err)
	assert.Equal(t, "background {\n    path = /home/u/pic.png\n}\n", string(data))
}

func TestSyncCommandFailsWithoutHyprpaperConf(t *testing.T) {
	dir := t.TempDir()
	settings = manager.Settings{
		HyprpaperConf: filepath.Join(dir, "missing.conf"),
		HyprlockConf:  filepath.Join(dir, "hyprlock.conf"),
	}

	c := newSyncCmd("sync")
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{})

	assert.Error(t, c.Execute())
}

func TestSyncCommandRejectsArguments(t *testing.T) {
	c := newSyncCmd("sync")
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"extra"})

	assert.Error(t, c.Execute())
}

func TestAskSettingsKeepsDefaultsOnEmptyInput(t *testing.T) {
	def := manager.Settings{
		HyprpaperConf:  "/a/hyprpaper.conf",
		HyprlockConf:   "/a/hyprlock.conf",
		Daemon:         "hyprpaper",
		Hyprctl:        "hyprctl",
		WallpapersPath: "/pics",
		LogFile:        "/a/log",
	}
	input := "\n/b/lock.conf\n\n\n\n\n\ny\n"

	got := askSettings(bufio.NewReader(strings.NewReader(input)), &bytes.Buffer{}, def)

	want := def
	want.HyprlockConf = "/b/lock.conf"
	want.Notify = true
	assert.Equal(t, want, got)
}

func TestWriteConfigIsReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hypr", "hyprwall.yaml")
	s := manager.Settings{
		HyprpaperConf:  "/a/hyprpaper.conf",
		HyprlockConf:   "/a/hyprlock.conf",
		Daemon:         "hyprpaper",
		Hyprctl:        "/usr/bin/hyprctl",
		SyncerCommand:  "hyprlock-sync",
		WallpapersPath: "/pics",
		Notify:         true,
		LogFile:        "/a/hyprwall.log",
	}

	require.NoError(t, writeConfig(path, s))

	got, err := manager.NewConfigManager(path).Settings()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
