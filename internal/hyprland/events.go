package hyprland

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

type Event struct {
	Name    string
	Payload string
	Raw     string
}

func EventSocket() string {
	return filepath.Join(os.Getenv("XDG_RUNTIME_DIR"), "hypr", os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"), ".socket2.sock")
}

// Subscribe streams events from the Hyprland event socket until ctx is done
// or the compositor closes the connection. The channel is closed either way.
func Subscribe(ctx context.Context) (<-chan Event, error) {
	return SubscribeSocket(ctx, EventSocket())
}

func SubscribeSocket(ctx context.Context, path string) (<-chan Event, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect event socket %s: %w", path, err)
	}

	out := make(chan Event, 128)
	stop := context.AfterFunc(ctx, func() { conn.Close() })

	go func() {
		defer close(out)
		defer stop()
		defer conn.Close()

		sc := bufio.NewScanner(conn)
		for sc.Scan() {
			line := sc.Text()
			name, payload := SplitEvent(line)

			select {
			case out <- Event{Name: name, Payload: payload, Raw: line}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func SplitEvent(line string) (string, string) {
	parts := strings.SplitN(line, ">>", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return line, ""
}

// IsMonitorChange reports whether the event adds or removes an output.
func IsMonitorChange(name string) bool {
	switch name {
	case "monitoradded", "monitoraddedv2", "monitorremoved", "monitorremovedv2":
		return true
	}
	return false
}
