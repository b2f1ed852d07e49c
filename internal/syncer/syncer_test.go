package syncer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hoppxi/hyprwall/internal/hyprlock"
	"github.com/hoppxi/hyprwall/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	summary string
	urgency notify.Urgency
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sent
	err  error
}

func (f *fakeNotifier) Send(summary, body string, urgency notify.Urgency) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sent{summary: summary, urgency: urgency})
	return f.err
}

const lockConf = "background {\n    monitor =\n    path = /old/pic.jpg\n}\n\ninput-field {\n    size = 250, 50\n}\n"

func setup(t *testing.T, paper, lock string) *Syncer {
	t.Helper()
	dir := t.TempDir()

	s := &Syncer{
		HyprpaperConf: filepath.Join(dir, "hyprpaper.conf"),
		HyprlockConf:  filepath.Join(dir, "hyprlock.conf"),
	}
	if paper != "" {
		require.NoError(t, os.WriteFile(s.HyprpaperConf, []byte(paper), 0o644))
	}
	if lock != "" {
		require.NoError(t, os.WriteFile(s.HyprlockConf, []byte(lock), 0o644))
	}
	return s
}

func read(t *testing.T, file string) string {
	t.Helper()
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	return string(data)
}

func TestSyncUpdatesHyprlock(t *testing.T) {
	s := setup(t, "preload=/home/u/pic.png\nwallpaper=DP-1, /home/u/pic.png\n", lockConf)
	n := &fakeNotifier{}
	s.Notifier = n

	res, err := s.Sync()
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.True(t, res.Updated())
	assert.Equal(t, "/home/u/pic.png", res.Preload)

	assert.Equal(t, strings.Replace(lockConf, "/old/pic.jpg", "/home/u/pic.png", 1), read(t, s.HyprlockConf))
	require.Len(t, n.sent, 1)
	assert.Equal(t, notify.Low, n.sent[0].urgency)
}

func TestSyncNoPreloadLine(t *testing.T) {
	s := setup(t, "wallpaper=DP-1, /x.png\n", lockConf)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.False(t, res.Updated())
	assert.Equal(t, lockConf, read(t, s.HyprlockConf))
	assert.Contains(t, res.String(), "No preload line")
}

func TestSyncEmptyPreloadLeavesHyprlockUntouched(t *testing.T) {
	s := setup(t, "preload=\nwallpaper=DP-1, \n", lockConf)
	n := &fakeNotifier{}
	s.Notifier = n

	res, err := s.Sync()
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.False(t, res.Updated())
	assert.Equal(t, lockConf, read(t, s.HyprlockConf))
	assert.Empty(t, n.sent)
}

func TestSyncNoPathLine(t *testing.T) {
	lock := "general {\n    grace = 2\n}\n"
	s := setup(t, "preload=/x.png\n", lock)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.Equal(t, hyprlock.NoMatchFound, res.Outcome.State)
	assert.Equal(t, lock, read(t, s.HyprlockConf))
	assert.Contains(t, res.String(), "No path line")
}

func TestSyncMissingHyprpaperConf(t *testing.T) {
	s := setup(t, "", lockConf)
	n := &fakeNotifier{}
	s.Notifier = n

	_, err := s.Sync()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, lockConf, read(t, s.HyprlockConf))
	require.Len(t, n.sent, 1)
	assert.Equal(t, notify.Critical, n.sent[0].urgency)
}

func TestSyncMissingHyprlockConf(t *testing.T) {
	s := setup(t, "preload=/x.png\n", "")

	res, err := s.Sync()
	require.Error(t, err)
	assert.Equal(t, hyprlock.ReadFailed, res.Outcome.State)

	var perr *hyprlock.PatchError
	assert.True(t, errors.As(err, &perr))
}

func TestSyncNotifierFailureIsNotFatal(t *testing.T) {
	s := setup(t, "preload=/x.png\n", lockConf)
	s.Notifier = &fakeNotifier{err: errors.New("no bus")}

	res, err := s.Sync()
	require.NoError(t, err)
	assert.True(t, res.Updated())
}

func TestWatchSyncsOnWrite(t *testing.T) {
	s := setup(t, "preload=/first.png\n", lockConf)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(s.HyprpaperConf, []byte("preload=/second.png\n"), 0o644))

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(s.HyprlockConf)
		return err == nil && strings.Contains(string(data), "    path = /second.png\n")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
