package storage

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reports changes to a single config file.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
	errors  chan error
	done    chan struct{}
}

// WatchConfig starts watching path. The parent directory is watched so that
// editors which replace the file on save are still seen.
func WatchConfig(path string) (*ConfigWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &ConfigWatcher{
		watcher: fsWatcher,
		path:    abs,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the event loop until Close.
func (w *ConfigWatcher) watch() {
	defer close(w.changes)
	defer close(w.errors)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce bursts: one pending notification is enough.
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// Changes delivers a value whenever the config file was written or replaced.
func (w *ConfigWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors returns a channel of errors that occur during watching.
func (w *ConfigWatcher) Errors() <-chan error {
	return w.errors
}

// Path returns the absolute path being watched.
func (w *ConfigWatcher) Path() string {
	return w.path
}

// Close stops watching the file.
func (w *ConfigWatcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
