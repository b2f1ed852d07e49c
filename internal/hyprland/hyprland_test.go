package hyprland

import (
	"context"
	"errors"
	"testing"

	"github.com/hoppxi/hyprwall/internal/manager/managertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monitorsJSON = `[
  {"id": 0, "name": "DP-1", "description": "Dell U2720Q", "width": 3840, "height": 2160, "focused": true},
  {"id": 1, "name": "HDMI-A-1", "description": "LG", "width": 1920, "height": 1080, "focused": false}
]`

func TestNamesKeepsEnumerationOrder(t *testing.T) {
	r := managertest.NewRunner().On("hyprctl -j monitors", monitorsJSON, nil)

	names, err := NewClient(r, "").Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"DP-1", "HDMI-A-1"}, names)
	assert.Equal(t, []string{"hyprctl -j monitors"}, r.Commands())
}

func TestMonitorsDecodesFields(t *testing.T) {
	r := managertest.NewRunner().On("hyprctl -j monitors", monitorsJSON, nil)

	monitors, err := NewClient(r, "hyprctl").Monitors(context.Background())
	require.NoError(t, err)
	require.Len(t, monitors, 2)
	assert.Equal(t, Monitor{ID: 0, Name: "DP-1", Description: "Dell U2720Q", Width: 3840, Height: 2160, Focused: true}, monitors[0])
}

func TestMonitorsFailures(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		is   error
	}{
		{name: "command fails", err: errors.New("exit status 1")},
		{name: "not json", out: "Couldn't connect to hyprland socket"},
		{name: "empty list", out: "[]", is: ErrNoMonitors},
		{name: "missing name", out: `[{"id": 0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := managertest.NewRunner().On("hyprctl -j monitors", tt.out, tt.err)

			_, err := NewClient(r, "").Names(context.Background())
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	r := managertest.NewRunner().
		On("hyprctl dispatch exec hyprpaper", "ok\n", nil).
		On("hyprctl dispatch bogus", "Invalid dispatcher", nil)

	c := NewClient(r, "")
	assert.NoError(t, c.Dispatch(context.Background(), "exec", "hyprpaper"))

	err := c.Dispatch(context.Background(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid dispatcher")
}
