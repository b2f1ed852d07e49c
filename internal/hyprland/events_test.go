package hyprland

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEvent(t *testing.T) {
	name, payload := SplitEvent("monitoradded>>HDMI-A-1")
	assert.Equal(t, "monitoradded", name)
	assert.Equal(t, "HDMI-A-1", payload)

	name, payload = SplitEvent("configreloaded")
	assert.Equal(t, "configreloaded", name)
	assert.Empty(t, payload)

	_, payload = SplitEvent("activewindow>>kitty,a>>b")
	assert.Equal(t, "kitty,a>>b", payload)
}

func TestIsMonitorChange(t *testing.T) {
	assert.True(t, IsMonitorChange("monitoradded"))
	assert.True(t, IsMonitorChange("monitorremovedv2"))
	assert.False(t, IsMonitorChange("workspace"))
}

func TestSubscribeSocketStreamsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s2.sock")
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		conn.Write([]byte("workspace>>2\nmonitoradded>>DP-2\n"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := SubscribeSocket(ctx, path)
	require.NoError(t, err)

	var got []Event
	for ev := range events {
		got = append(got, ev)
	}

	require.Len(t, got, 2)
	assert.Equal(t, Event{Name: "workspace", Payload: "2", Raw: "workspace>>2"}, got[0])
	assert.Equal(t, "monitoradded", got[1].Name)
	assert.Equal(t, "DP-2", got[1].Payload)
}

func TestSubscribeSocketMissing(t *testing.T) {
	_, err := SubscribeSocket(context.Background(), filepath.Join(t.TempDir(), "nope.sock"))
	assert.Error(t, err)
}
