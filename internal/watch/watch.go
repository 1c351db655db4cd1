// Package watch re-runs work when a source file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ltungv/calc/internal/logging"
)

// DefaultDelay is how long a file must stay quiet before a change is reported.
const DefaultDelay = 100 * time.Millisecond

// Watcher reports changes to a single file. The parent directory is watched
// so that editors replacing the file through a rename are still noticed.
type Watcher struct {
	path    string
	delay   time.Duration
	logger  *slog.Logger
	watcher *fsnotify.Watcher
}

// New starts watching path. Events are only delivered once Run is called.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return &Watcher{abs, DefaultDelay, logger, watcher}, nil
}

// Run calls onChange after every burst of writes to the file and blocks until
// ctx is done or the watcher fails.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()
	w.logger.Debug("watching file", "path", w.path)

	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("stopped watching file", "path", w.path)
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("file changed", "path", w.path, "op", event.Op.String())
			timer.Reset(w.delay)

		case <-timer.C:
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// File watches path and calls onChange on every change until ctx is done.
func File(ctx context.Context, path string, logger *slog.Logger, onChange func()) error {
	w, err := New(path, logger)
	if err != nil {
		return err
	}
	return w.Run(ctx, onChange)
}
