package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceInterval collapses the burst of events an editor save produces.
const debounceInterval = 100 * time.Millisecond

// manifestWatcher reports changes to a single manifest file. It watches the
// containing directory so saves that replace the file are seen.
type manifestWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

func newManifestWatcher(path string) (*manifestWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &manifestWatcher{path: abs, watcher: w}, nil
}

// Run calls onChange once per burst of changes to the manifest until ctx is
// done.
func (mw *manifestWatcher) Run(ctx context.Context, onChange func()) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-mw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !mw.relevant(event) {
				continue
			}
			logger.Debug("manifest event", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			pending = time.After(debounceInterval)

		case <-pending:
			pending = nil
			onChange()

		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (mw *manifestWatcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod || event.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	return err == nil && abs == mw.path
}

// Close stops watching.
func (mw *manifestWatcher) Close() error {
	return mw.watcher.Close()
}
