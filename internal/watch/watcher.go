// Package watch triggers a callback when a settings file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/buildsettings/internal/logfields"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 500 * time.Millisecond

// ChangeFunc is called once per debounced burst of changes.
type ChangeFunc func(ctx context.Context) error

// FileWatcher monitors a single file and invokes a callback after it changes.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange ChangeFunc
	logger   *slog.Logger
}

// New creates a watcher for path. A non-positive debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, onChange ChangeFunc, logger *slog.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileWatcher{path: abs, debounce: debounce, onChange: onChange, logger: logger}, nil
}

// Run watches until ctx is canceled. The directory is watched rather than the
// file itself so atomic-rename saves are seen.
func (w *FileWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.logger.Info("Watching settings file", logfields.Path(w.path))
	return w.loop(ctx, fw.Events, fw.Errors)
}

func (w *FileWatcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	name := filepath.Base(w.path)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Remove) {
				w.logger.Warn("Settings file removed", logfields.Path(event.Name))
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.logger.Debug("Settings file change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				timer.Reset(w.debounce)
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Error("Settings watcher error", logfields.Error(err))
		case <-timer.C:
			if err := w.onChange(ctx); err != nil {
				w.logger.Error("Failed to apply settings change", logfields.Error(err))
			}
		}
	}
}
