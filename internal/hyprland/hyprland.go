package hyprland

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hoppxi/hyprwall/internal/manager"
)

var ErrNoMonitors = errors.New("hyprland reported no monitors")

type Monitor struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Focused     bool   `json:"focused"`
}

// Client talks to Hyprland through the hyprctl binary.
type Client struct {
	runner  manager.Runner
	hyprctl string
}

func NewClient(runner manager.Runner, hyprctl string) *Client {
	if hyprctl == "" {
		hyprctl = "hyprctl"
	}
	return &Client{runner: runner, hyprctl: hyprctl}
}

// Monitors returns the active monitors in the order hyprctl lists them.
func (c *Client) Monitors(ctx context.Context) ([]Monitor, error) {
	out, err := c.runner.Run(ctx, c.hyprctl, "-j", "monitors")
	if err != nil {
		return nil, fmt.Errorf("failed to query monitors: %w", err)
	}

	return ParseMonitors(out)
}

func ParseMonitors(data []byte) ([]Monitor, error) {
	var monitors []Monitor
	if err := json.Unmarshal(bytes.TrimSpace(data), &monitors); err != nil {
		return nil, fmt.Errorf("failed to parse monitors: %w", err)
	}

	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}

	for i, m := range monitors {
		if m.Name == "" {
			return nil, fmt.Errorf("failed to parse monitors: entry %d has no name", i)
		}
	}

	return monitors, nil
}

func (c *Client) Names(ctx context.Context) ([]string, error) {
	monitors, err := c.Monitors(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(monitors))
	for _, m := range monitors {
		names = append(names, m.Name)
	}
	return names, nil
}

// Dispatch runs `hyprctl dispatch <args...>`. hyprctl exits 0 even when the
// dispatcher rejects the request, so anything other than "ok" is an error.
func (c *Client) Dispatch(ctx context.Context, args ...string) error {
	out, err := c.runner.Run(ctx, c.hyprctl, append([]string{"dispatch"}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to dispatch %s: %w", strings.Join(args, " "), err)
	}

	if reply := strings.TrimSpace(string(out)); reply != "" && reply != "ok" {
		return fmt.Errorf("failed to dispatch %s: %s", strings.Join(args, " "), reply)
	}

	return nil
}
