// Package syncer copies the hyprpaper preload path into hyprlock.conf.
package syncer

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hoppxi/hyprwall/internal/hyprlock"
	"github.com/hoppxi/hyprwall/internal/hyprpaper"
	"github.com/hoppxi/hyprwall/internal/notify"
)

type Notifier interface {
	Send(summary, body string, urgency notify.Urgency) error
}

type Syncer struct {
	HyprpaperConf string
	HyprlockConf  string
	// Notifier is optional.
	Notifier Notifier
}

type Result struct {
	Preload string
	// Found is false when hyprpaper.conf has no preload line.
	Found   bool
	Outcome hyprlock.Outcome
}

// Updated reports whether hyprlock.conf was rewritten.
func (r Result) Updated() bool {
	return r.Outcome.State == hyprlock.Saved
}

func (r Result) String() string {
	switch {
	case !r.Found:
		return "No preload line found in hyprpaper config, nothing to sync."
	case r.Outcome.State == hyprlock.NoMatchFound:
		return "No path line found in hyprlock config, nothing updated."
	case r.Updated():
		return fmt.Sprintf("Updated hyprlock path to: %s", r.Preload)
	}
	return fmt.Sprintf("Sync stopped while %s.", r.Outcome.State)
}

// Sync reads the preload path and patches hyprlock.conf with it. A missing
// preload line or path line is a result, not an error.
func (s *Syncer) Sync() (Result, error) {
	preload, found, err := hyprpaper.ReadPreload(s.HyprpaperConf)
	if err != nil {
		err = fmt.Errorf("failed to read hyprpaper config: %w", err)
		s.notify("Hyprlock sync failed", err.Error(), notify.Critical)
		return Result{}, err
	}

	// An empty preload value would blank the lock screen background.
	if !found || preload == "" {
		log.Printf("No preload line in %s", s.HyprpaperConf)
		return Result{}, nil
	}

	outcome, err := hyprlock.Patch(s.HyprlockConf, preload)
	res := Result{Preload: preload, Found: true, Outcome: outcome}
	if err != nil {
		s.notify("Hyprlock sync failed", err.Error(), notify.Critical)
		return res, err
	}

	switch outcome.State {
	case hyprlock.Saved:
		log.Printf("Updated path in %s to %s (%d line(s))", s.HyprlockConf, preload, len(outcome.Matched))
		s.notify("Hyprlock updated", "Lock screen background set to "+preload, notify.Low)
	case hyprlock.NoMatchFound:
		log.Printf("No path line in %s, left untouched", s.HyprlockConf)
	}

	return res, nil
}

func (s *Syncer) notify(summary, body string, urgency notify.Urgency) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Send(summary, body, urgency); err != nil {
		log.Printf("Notification failed: %v", err)
	}
}

// settle absorbs the burst of events a truncate-and-write produces.
const settle = 150 * time.Millisecond

// Watch syncs every time hyprpaper.conf is written until ctx is done. The
// parent directory is watched so the file may be replaced or created later.
func (s *Syncer) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(s.HyprpaperConf)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	log.Printf("Watching %s", target)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				pending = time.After(settle)
			}

		case <-pending:
			pending = nil
			if res, err := s.Sync(); err != nil {
				log.Printf("Sync failed: %v", err)
			} else {
				log.Print(res)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
