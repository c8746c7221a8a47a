package javascript

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Debounce is how long Watch waits after the last change before it calls
// rebuild. Editors tend to write a file several times per save.
var Debounce = 150 * time.Millisecond

// Watch calls rebuild after files under dirs change and returns when ctx is
// cancelled. Subdirectories present at start are watched too. A failing
// rebuild is logged and watching continues.
func Watch(ctx context.Context, log *zap.Logger, dirs []string, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WithStack(err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			log.Debug("change detected", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			pending = time.After(Debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		case <-pending:
			pending = nil
			if err := rebuild(); err != nil {
				log.Error("rebuild failed", zap.Error(err))
				continue
			}
			log.Info("rebuilt javascript")
		}
	}
}
