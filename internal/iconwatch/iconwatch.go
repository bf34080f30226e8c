//go:build !tinygo

// Package iconwatch signals when an icon override directory changes.
package iconwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"kiosk/hal"

	"github.com/fsnotify/fsnotify"
)

// Watcher turns file events under one directory into reload signals.
type Watcher struct {
	w      *fsnotify.Watcher
	log    hal.Logger
	reload chan struct{}
}

// New starts watching dir. log may be nil.
func New(dir string, log hal.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("iconwatch: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("iconwatch: watch %s: %w", dir, err)
	}
	return &Watcher{w: w, log: log, reload: make(chan struct{}, 1)}, nil
}

// Reload receives a value after one or more .bmp files changed. Bursts of
// events collapse into a single pending signal.
func (w *Watcher) Reload() <-chan struct{} { return w.reload }

// Run forwards events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			select {
			case w.reload <- struct{}{}:
			default:
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			if w.log != nil {
				w.log.WriteLineString("iconwatch: " + err.Error())
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error { return w.w.Close() }

func relevant(ev fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(ev.Name), ".bmp") {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
