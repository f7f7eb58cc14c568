package site

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors and atomic renames
// produce for a single save.
const DefaultDebounce = 300 * time.Millisecond

// Watch calls onChange after path is written, created or renamed into
// place, until ctx is cancelled. The containing directory is watched so
// atomic replacements are seen. Errors from onChange are logged and
// watching continues.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func() error, logger *zap.Logger) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	target := filepath.Base(path)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", zap.Error(err))

		case <-timer.C:
			logger.Info("Data changed, regenerating", zap.String("path", path))
			if err := onChange(); err != nil {
				logger.Error("Regeneration failed", zap.Error(err))
			}
		}
	}
}
