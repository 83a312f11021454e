// Package watch reports changes to the data files the configuration UI
// reads: the label dictionary, the languages list and the state tree.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/project-owner/peppy-cfg/internal/logging"
)

// Watcher follows a fixed set of files. It watches their directories so
// that editors replacing a file through rename are still seen.
type Watcher struct {
	files      map[string]bool // absolute paths of interest
	dirs       []string
	watcher    *fsnotify.Watcher
	ctx        context.Context
	cancelFunc context.CancelFunc
	events     chan string
	started    bool
	once       sync.Once
}

// NewWatcher prepares a watcher for files. Nothing is observed until Start.
func NewWatcher(ctx context.Context, files []string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		files:   make(map[string]bool, len(files)),
		watcher: fw,
		events:  make(chan string, 8),
	}
	seen := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}

	w.ctx, w.cancelFunc = context.WithCancel(ctx)
	return w, nil
}

// Events delivers the absolute path of each watched file that was written,
// created or renamed into place. The channel closes when the watcher stops.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Start registers the directories and begins forwarding events.
func (w *Watcher) Start() error {
	w.started = true
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.watcher.Close()
			close(w.events)
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go w.loop()
	logging.Debug("watch started", zap.Strings("dirs", w.dirs))
	return nil
}

// Cancel stops the watcher. It is safe to call more than once, and
// releases the watcher even when Start was never called.
func (w *Watcher) Cancel() {
	w.once.Do(func() {
		w.cancelFunc()
		if !w.started {
			w.watcher.Close()
			close(w.events)
		}
	})
}

func (w *Watcher) loop() {
	defer close(w.events)
	defer w.watcher.Close()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if path, ok := w.relevant(event); ok {
				select {
				case w.events <- path:
				case <-w.ctx.Done():
					return
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("watch error", zap.Error(err))
		case <-w.ctx.Done():
			return
		}
	}
}

// relevant filters events down to changes of the watched files.
func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	path := filepath.Clean(event.Name)
	if !w.files[path] {
		return "", false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}
	logging.Debug("watched file changed", zap.String("path", path), zap.String("op", event.Op.String()))
	return path, true
}
