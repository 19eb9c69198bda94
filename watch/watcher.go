// Package watch re-runs callbacks when a file changes on disk, debouncing
// rapid successive writes. It backs csvlint's `check --watch` mode.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"csvlint/errors"
	"csvlint/logger"
)

// Callback is invoked with the watched path after a change settles.
type Callback func(path string) error

// FileWatcher watches one file for changes and triggers callbacks.
type FileWatcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []Callback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// New creates a watcher for path. The containing directory is watched
// rather than the file itself: editors that replace-on-save would
// otherwise detach a direct file watch.
func New(path string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
	}

	return &FileWatcher{
		path:           path,
		watcher:        watcher,
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}, nil
}

// OnChange registers a callback to be called when the file changes
func (fw *FileWatcher) OnChange(callback Callback) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.callbacks = append(fw.callbacks, callback)
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go fw.watchLoop()
}

// Stop stops watching for file changes
func (fw *FileWatcher) Stop() error {
	return fw.watcher.Close()
}

// watchLoop monitors file system events
func (fw *FileWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			// Only react to Write or Create events on the watched file.
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(fw.path) {
				continue
			}

			logger.Debugw("File watcher detected change",
				"file", event.Name,
				"op", event.Op.String())
			fw.scheduleFire()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("File watcher error",
				"error", err)
		}
	}
}

// scheduleFire debounces rapid file changes before firing callbacks
func (fw *FileWatcher) scheduleFire() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	fw.debounceTimer = time.AfterFunc(fw.debouncePeriod, fw.fire)
}

// fire invokes every registered callback; a failing callback does not
// stop the others.
func (fw *FileWatcher) fire() {
	fw.mu.RLock()
	callbacks := make([]Callback, len(fw.callbacks))
	copy(callbacks, fw.callbacks)
	fw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(fw.path); err != nil {
			logger.Warnw("File watcher callback error",
				"file", fw.path,
				"error", err)
		}
	}
}
