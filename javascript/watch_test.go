package javascript

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatchRebuildsAndStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	old := Debounce
	Debounce = 10 * time.Millisecond
	defer func() { Debounce = old }()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	rebuilt := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	ready := make(chan struct{})
	go func() {
		close(ready)
		done <- Watch(ctx, zap.NewNop(), []string{dir}, func() error {
			rebuilt <- struct{}{}
			return nil
		})
	}()
	<-ready

	// The watcher registers asynchronously; keep touching the file until a
	// rebuild is observed.
	file := filepath.Join(dir, "nested", "gallery.js")
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		select {
		case <-rebuilt:
			break wait
		case <-tick.C:
			require.NoError(t, os.WriteFile(file, []byte("console.log(1)"), 0o644))
		case <-deadline:
			t.Fatal("no rebuild after writing a watched file")
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	err := Watch(context.Background(), zap.NewNop(), []string{filepath.Join(t.TempDir(), "missing")}, func() error { return nil })
	require.Error(t, err)
}
