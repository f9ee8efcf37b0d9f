package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/xqrs/coaster/scroll"
)

// watcher reports writes to a fixed set of files. It watches their
// directories so that editors replacing a file by renaming are noticed too.
type watcher struct {
	fs    *fsnotify.Watcher
	files map[string]struct{}
}

func newWatcher(paths ...string) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &watcher{fs: fs, files: make(map[string]struct{})}
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// run calls changed with the absolute path of every watched file that is
// written or created, until done is closed or the watcher is closed.
func (w *watcher) run(done <-chan struct{}, changed func(path string)) {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, ok := w.files[name]; ok {
				changed(name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			scroll.Logger().Warn("file watcher error", "err", err)
		case <-done:
			return
		}
	}
}

func (w *watcher) Close() error {
	return w.fs.Close()
}
