// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a [Watcher] waits after the last change
// to a file before reporting it. Editors typically save with several
// writes, or a write and a rename, in quick succession.
var DefaultDebounce = 50 * time.Millisecond

// Watcher reports changes to a set of files. It watches the directory
// of each file rather than the file itself, so that files replaced by
// a rename on save keep being watched.
//
// Events are sent from a background goroutine that never does anything
// but send cleaned absolute paths; the receiver decides what to do with
// them on its own thread.
type Watcher struct {
	fsw      *fsnotify.Watcher
	events   chan string
	done     chan struct{}
	debounce time.Duration

	mu     sync.Mutex
	closed bool
	files  map[string]bool
	dirs   map[string]bool
	timers map[string]*time.Timer
	wg     sync.WaitGroup
}

// NewWatcher returns a new Watcher with nothing watched.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		events:   make(chan string, 16),
		done:     make(chan struct{}),
		debounce: DefaultDebounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		timers:   make(map[string]*time.Timer),
	}
	w.wg.Add(1)
	go w.watch()
	return w, nil
}

// Events returns the channel on which changed file paths are sent.
// It is closed by [Watcher.Close].
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Add starts watching the file at path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Close stops watching and closes the events channel.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for path, t := range w.timers {
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.timers, path)
	}
	w.mu.Unlock()
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	close(w.events)
	return err
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.changed(filepath.Clean(event.Name))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("assets: file watcher error", "err", err)
		}
	}
}

// changed (re)starts the debounce timer for path, if it is watched.
func (w *Watcher) changed(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || !w.files[path] {
		return
	}
	if t, ok := w.timers[path]; ok && t.Stop() {
		w.wg.Done()
	}
	var t *time.Timer
	w.wg.Add(1)
	t = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		w.mu.Lock()
		if w.timers[path] == t {
			delete(w.timers, path)
		}
		w.mu.Unlock()
		select {
		case w.events <- path:
		case <-w.done:
		}
	})
	w.timers[path] = t
}
