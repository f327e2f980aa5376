// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a layout file whenever it changes on disk.
type Watcher struct {

	// Filename is the watched layout file.
	Filename string

	watcher *fsnotify.Watcher
	done    chan bool
	wg      sync.WaitGroup
}

// Watch starts watching the given layout file until the context is
// done or [Watcher.Close] is called. Every time the file is written
// or replaced, it is opened and apply is called with the layout.
// apply is called on the watcher goroutine, so it must hand the
// layout over to the goroutine that owns the [Controller], for example
// by calling [Controller.SetLayout] there. Files that fail to open
// are logged and skipped.
func Watch(ctx context.Context, filename string, apply func(l Layout)) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// the directory is watched, as saving replaces the file
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{Filename: abs, watcher: fw, done: make(chan bool)}
	w.wg.Add(1)
	go w.watch(ctx, apply)
	return w, nil
}

func (w *Watcher) watch(ctx context.Context, apply func(l Layout)) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Filename || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			l, err := Open(w.Filename)
			if err != nil {
				slog.Warn("dock: reloading layout", "file", w.Filename, "err", err)
				continue
			}
			apply(l)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("dock: watching layout", "file", w.Filename, "err", err)
		}
	}
}

// Close stops watching and waits for the watcher goroutine to end.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
