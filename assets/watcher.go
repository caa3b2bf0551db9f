// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/cubes/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a set of files on its Changes channel.
// It watches the directories holding the files, so that files replaced
// by a rename, as many editors save them, are still reported.
type Watcher struct {

	// Changes receives the cleaned path of each changed file. Changes are
	// dropped when the buffer is full, as a later change to the same file
	// reloads it anyway.
	Changes chan string

	watcher *fsnotify.Watcher
	files   map[string]bool
}

// NewWatcher returns a watcher for the given files.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{Changes: make(chan string, 16), watcher: fw, files: map[string]bool{}}
	dirs := map[string]bool{}
	for _, p := range paths {
		p = filepath.Clean(p)
		w.files[p] = true
		dirs[filepath.Dir(p)] = true
	}
	for d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, errors.Join(errors.New("assets: watching "+d), err)
		}
	}
	return w, nil
}

// Run forwards changes until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			p := filepath.Clean(ev.Name)
			if !w.files[p] {
				continue
			}
			select {
			case w.Changes <- p:
			default:
				slog.Debug("dropped file change", "path", p)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
