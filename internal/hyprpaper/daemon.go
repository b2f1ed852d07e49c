package hyprpaper

import (
	"context"
	"fmt"
	"log"

	"github.com/hoppxi/hyprwall/internal/manager"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, args ...string) error
}

// Daemon restarts the wallpaper daemon so it picks up a rewritten config.
type Daemon struct {
	Name   string
	Runner manager.Runner
	Hypr   Dispatcher
}

// Restart kills any running instance by name and launches a new one through
// the compositor. A failing kill is expected when nothing was running.
func (d *Daemon) Restart(ctx context.Context) error {
	if _, err := d.Runner.Run(ctx, "killall", d.Name); err != nil {
		log.Printf("killall %s: %v (ignored)", d.Name, err)
	}

	if err := d.Hypr.Dispatch(ctx, "exec", d.Name); err != nil {
		return fmt.Errorf("failed to launch %s: %w", d.Name, err)
	}

	log.Printf("Restarted %s.", d.Name)
	return nil
}
