package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hoppxi/hyprwall/internal/hyprpaper"
	"github.com/hoppxi/hyprwall/internal/manager"
)

// ImageExtensions are offered by the file chooser and picked by SetRandom.
var ImageExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp"}

func IsImageFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return slices.Contains(ImageExtensions, ext)
}

type MonitorLister interface {
	Names(ctx context.Context) ([]string, error)
}

type Restarter interface {
	Restart(ctx context.Context) error
}

// Setter writes hyprpaper.conf for every active monitor, restarts the daemon
// and hands over to the hyprlock syncer.
type Setter struct {
	Monitors   MonitorLister
	Daemon     Restarter
	Runner     manager.Runner
	ConfigFile string
	// SyncerCommand runs after a successful restart. Empty skips the chain.
	SyncerCommand  []string
	WallpapersPath string
}

// Validate checks that path names an existing regular file.
func Validate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &Error{Kind: Validation, Err: fmt.Errorf("%w at path: %s", ErrNotExist, path)}
	} else if err != nil {
		return &Error{Kind: Validation, Err: fmt.Errorf("could not check file status for %s: %w", path, err)}
	}

	if !info.Mode().IsRegular() {
		return &Error{Kind: Validation, Err: fmt.Errorf("%w: %s", ErrNotRegular, path)}
	}
	return nil
}

// Set applies path to every monitor and then runs the syncer. It returns the
// monitors the config was written for, even when only the restart or the
// chain failed. The syncer runs after a failed restart too.
func (s *Setter) Set(ctx context.Context, path string) ([]string, error) {
	log.Printf("Attempting to set wallpaper to: %s", path)

	monitors, err := s.apply(ctx, path)
	if err != nil && KindOf(err) != Restart {
		return monitors, err
	}

	// hyprpaper.conf is already rewritten, so hyprlock follows it even when
	// the daemon did not come back.
	if err != nil {
		log.Printf("Set wallpaper: %v", err)
	}

	if chainErr := s.chain(ctx); chainErr != nil {
		return monitors, errors.Join(err, &Error{Kind: Chain, Err: chainErr})
	}

	return monitors, err
}

// Reapply rewrites the config for the current preload path, for example after
// a monitor was plugged in. The syncer is not run since the path is unchanged.
func (s *Setter) Reapply(ctx context.Context) ([]string, error) {
	path, found, err := hyprpaper.ReadPreload(s.ConfigFile)
	if err != nil {
		return nil, &Error{Kind: Validation, Err: err}
	}
	if !found {
		return nil, &Error{Kind: Validation, Err: ErrNoPreload}
	}

	return s.apply(ctx, path)
}

// SetRandom picks an image below WallpapersPath and sets it.
func (s *Setter) SetRandom(ctx context.Context) (string, []string, error) {
	var paths []string

	err := filepath.WalkDir(s.WallpapersPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && IsImageFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return "", nil, &Error{Kind: Validation, Err: fmt.Errorf("error traversing directory %s: %w", s.WallpapersPath, err)}
	}

	if len(paths) == 0 {
		return "", nil, &Error{Kind: Validation, Err: fmt.Errorf("%w in %s", ErrNoImages, s.WallpapersPath)}
	}

	i := rand.Intn(len(paths))
	log.Printf("Selected random wallpaper (index %d of %d): %s", i, len(paths), paths[i])

	monitors, err := s.Set(ctx, paths[i])
	return paths[i], monitors, err
}

func (s *Setter) apply(ctx context.Context, path string) ([]string, error) {
	path = strings.TrimSpace(path)

	if err := Validate(path); err != nil {
		return nil, err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	monitors, err := s.Monitors.Names(ctx)
	if err != nil {
		return nil, &Error{Kind: Query, Err: err}
	}

	if err := hyprpaper.Write(s.ConfigFile, path, monitors); err != nil {
		return monitors, &Error{Kind: Write, Err: err}
	}
	log.Printf("Wrote %s for %d monitor(s): %s", s.ConfigFile, len(monitors), strings.Join(monitors, ", "))

	if err := s.Daemon.Restart(ctx); err != nil {
		return monitors, &Error{Kind: Restart, Err: err}
	}

	return monitors, nil
}

func (s *Setter) chain(ctx context.Context) error {
	if len(s.SyncerCommand) == 0 {
		log.Println("No syncer command configured, skipping hyprlock sync")
		return nil
	}

	out, err := s.Runner.Run(ctx, s.SyncerCommand[0], s.SyncerCommand[1:]...)
	if msg := strings.TrimSpace(string(out)); msg != "" {
		log.Printf("%s: %s", filepath.Base(s.SyncerCommand[0]), msg)
	}
	return err
}

// ResolveSyncer turns the configured syncer_command into argv. When nothing is
// configured it prefers hyprlock-sync installed next to exe, then one on PATH,
// and finally falls back to "<exe> sync".
func ResolveSyncer(configured, exe string, lookPath func(string) (string, error)) []string {
	if fields := strings.Fields(configured); len(fields) > 0 {
		return fields
	}

	if exe != "" {
		sibling := filepath.Join(filepath.Dir(exe), "hyprlock-sync")
		if info, err := os.Stat(sibling); err == nil && info.Mode().IsRegular() {
			return []string{sibling}
		}
	}

	if p, err := lookPath("hyprlock-sync"); err == nil {
		return []string{p}
	}

	if exe != "" {
		return []string{exe, "sync"}
	}
	return nil
}
