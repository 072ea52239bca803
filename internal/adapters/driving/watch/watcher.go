// Package watch rebuilds the documentation index when files change on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docserve/internal/core/ports/driving"
	"github.com/custodia-labs/docserve/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last event
// before triggering a rebuild. Editors emit bursts of writes; one
// rebuild covers the burst.
const DefaultDebounce = 2 * time.Second

// Watcher observes a documentation root and triggers full index
// rebuilds. The index has no per-file invalidation, so every change
// results in a full rescan.
type Watcher struct {
	root     string
	index    driving.IndexService
	debounce time.Duration
}

// NewWatcher creates a watcher over root. debounce defaults to
// DefaultDebounce when non-positive.
func NewWatcher(root string, index driving.IndexService, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{root: root, index: index, debounce: debounce}
}

// Run watches the root and its subdirectories until ctx is cancelled.
// Newly created directories are added to the watch set.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, dir := range collectDirs(w.root) {
		if err := fw.Add(dir); err != nil {
			logger.Warn("watch: cannot watch %s: %v", dir, err)
		}
	}
	logger.Info("watch: watching %s", w.root)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("watch: %s %s", event.Op, event.Name)

			// Watch directories as they appear so files created in
			// them later are seen.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := fw.Add(event.Name); err != nil {
						logger.Warn("watch: cannot watch %s: %v", event.Name, err)
					}
				}
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if _, err := w.index.Reindex(ctx, true); err != nil {
				logger.Warn("watch: rebuild failed: %v", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// relevant reports whether event should trigger a rebuild. Directory
// creation counts because markdown may land inside shortly after.
func relevant(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) {
		return false
	}
	if event.Op.Has(fsnotify.Create) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	return ext == ".md" || ext == ".markdown"
}

// collectDirs returns root and all subdirectories beneath it.
// Unreadable directories are skipped.
func collectDirs(root string) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error { //nolint:errcheck
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}
