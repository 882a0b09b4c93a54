package locale

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 200 * time.Millisecond

// ReloadCallback is called after the store has been swapped to freshly
// loaded labels.
type ReloadCallback func(l *Labels)

// Watch reloads the labels file into store whenever it changes, until ctx
// is cancelled. The parent directory is watched so that editors which
// replace the file by renaming are handled. Bursts of events are debounced
// and a file that fails to load leaves the active labels untouched.
func Watch(ctx context.Context, path string, store *Store, logger *slog.Logger, cb ReloadCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	logger.Info("labels watcher: started", slog.String("path", target))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(reloadDelay)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(reloadDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("labels watcher: stopped")
			return nil

		case <-reloadCh:
			labels, loadErr := LoadFile(target)
			if loadErr != nil {
				logger.Warn("labels watcher: reload failed",
					slog.String("path", target),
					slog.String("error", loadErr.Error()))
				continue
			}
			store.Swap(labels)
			logger.Info("labels watcher: reloaded", slog.String("path", target))
			if cb != nil {
				cb(labels)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("labels watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
