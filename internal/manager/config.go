package manager

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/hoppxi/hyprwall/config"
	"github.com/spf13/viper"
)

// Settings is the resolved hyprwall configuration with "~" already expanded.
type Settings struct {
	HyprpaperConf  string `yaml:"hyprpaper_conf"`
	HyprlockConf   string `yaml:"hyprlock_conf"`
	Daemon         string `yaml:"daemon"`
	Hyprctl        string `yaml:"hyprctl"`
	SyncerCommand  string `yaml:"syncer_command"`
	WallpapersPath string `yaml:"wallpapers_path"`
	Notify         bool   `yaml:"notify"`
	LogFile        string `yaml:"log_file"`
}

type ConfigManager struct {
	path string

	once sync.Once
	v    *viper.Viper
	err  error
}

var Config = NewConfigManager("")

// NewConfigManager returns a manager reading path, or ConfigPath() when path is empty.
func NewConfigManager(path string) *ConfigManager {
	return &ConfigManager{path: path}
}

func ConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "hypr", "hyprwall.yaml")
}

func (c *ConfigManager) Path() string {
	if c.path != "" {
		return c.path
	}
	return ConfigPath()
}

// SetPath points the manager at another file. It has no effect after Load.
func (c *ConfigManager) SetPath(path string) {
	c.path = path
}

func (c *ConfigManager) Load() (*viper.Viper, error) {
	c.once.Do(func() {
		c.v, c.err = newViper(c.Path())
	})

	return c.v, c.err
}

func newViper(confPath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(config.Defaults())); err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	v.SetEnvPrefix("HYPRWALL")
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	// A missing user file is fine, the embedded defaults apply.
	if _, err := os.Stat(confPath); confPath != "" && err == nil {
		v.SetConfigFile(confPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", confPath, err)
		}
	}

	return v, nil
}

// DefaultSettings returns the embedded defaults, ignoring any user file.
func DefaultSettings() (Settings, error) {
	v, err := newViper("")
	if err != nil {
		return Settings{}, err
	}
	return SettingsFrom(v), nil
}

func (c *ConfigManager) Settings() (Settings, error) {
	v, err := c.Load()
	if err != nil {
		return Settings{}, err
	}
	return SettingsFrom(v), nil
}

func SettingsFrom(v *viper.Viper) Settings {
	return Settings{
		HyprpaperConf:  ExpandHome(v.GetString("hyprpaper_conf")),
		HyprlockConf:   ExpandHome(v.GetString("hyprlock_conf")),
		Daemon:         v.GetString("daemon"),
		Hyprctl:        v.GetString("hyprctl"),
		SyncerCommand:  v.GetString("syncer_command"),
		WallpapersPath: ExpandHome(v.GetString("wallpapers_path")),
		Notify:         v.GetBool("notify"),
		LogFile:        ExpandHome(v.GetString("log_file")),
	}
}

// Watch calls onChange after the user config file changes on disk. Without a
// user config file there is nothing to watch.
func (c *ConfigManager) Watch(onChange func(Settings)) {
	v, err := c.Load()
	if err != nil || v.ConfigFileUsed() == "" {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		onChange(SettingsFrom(v))
	})
	v.WatchConfig()
}

func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
