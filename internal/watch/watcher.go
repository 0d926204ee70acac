// Package watch reports changes to a single file, surviving the
// write-to-temp-then-rename replacement that atomic writers perform.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events one save produces.
const DefaultDebounce = 150 * time.Millisecond

// FileWatcher emits on Changes each time the watched file is written,
// created or replaced. Bursts within the debounce window collapse into one.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	changes  chan struct{}
	errors   chan error
}

// NewFileWatcher watches path. The parent directory is watched rather than
// the file itself so that a rename over the file is still observed.
func NewFileWatcher(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FileWatcher{
		watcher:  w,
		path:     abs,
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		errors:   make(chan error, 1),
	}, nil
}

// Run processes events until ctx is done or the watcher is closed.
func (fw *FileWatcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		close(fw.changes)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case fw.changes <- struct{}{}:
			default:
				// A change is already pending.
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case fw.errors <- err:
			default:
			}
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// Changes is closed when Run returns.
func (fw *FileWatcher) Changes() <-chan struct{} {
	return fw.changes
}

// Errors carries non-fatal watcher errors.
func (fw *FileWatcher) Errors() <-chan error {
	return fw.errors
}

// Path is the absolute path being watched.
func (fw *FileWatcher) Path() string {
	return fw.path
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
