package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to palette files in a set of directories.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	errs     func(error)
	ignored  map[string]bool
}

// NewWatcher watches the directories containing paths (and any directories
// in paths). Bursts of events within debounce collapse into one change.
func NewWatcher(paths []string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		dir := p
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			dir = filepath.Dir(p)
		}
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return &Watcher{watcher: w, debounce: debounce, ignored: make(map[string]bool)}, nil
}

// Ignore drops events for the given files, typically the generator's own
// output.
func (w *Watcher) Ignore(paths ...string) {
	for _, p := range paths {
		w.ignored[absPath(p)] = true
	}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// OnError sets a callback for watcher errors; by default they are dropped.
func (w *Watcher) OnError(fn func(error)) {
	w.errs = fn
}

// Run blocks until ctx is done, calling onChange after each debounced burst
// of palette file events. onChange runs on the Run goroutine, so calls never
// overlap.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	var timer *time.Timer
	var fire <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.errs != nil {
				w.errs(err)
			}

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !IsPaletteFile(evt.Name) || evt.Op == fsnotify.Chmod || w.ignored[absPath(evt.Name)] {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
