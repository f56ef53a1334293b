package settings

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"buildfetch/pkg/logging"
)

// debounceInterval is the time to wait after the last file event
// before triggering a reload. Editors and atomic writers produce
// bursts of events for a single logical change.
const debounceInterval = 500 * time.Millisecond

// watcher monitors a single file for changes via fsnotify and invokes
// onChange after the event burst settles.
type watcher struct {
	path     string
	onChange func()

	fsWatcher *fsnotify.Watcher
	stopCh    chan struct{}

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
}

// newWatcher starts watching the directory containing path. Watching
// the directory rather than the file survives atomic replace-by-rename
// writes.
func newWatcher(path string, onChange func()) (*watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &watcher{
		path:      path,
		onChange:  onChange,
		fsWatcher: fsWatcher,
		stopCh:    make(chan struct{}),
	}
	go w.processEvents()

	logging.Debug("Settings", "Watching %s for changes", path)
	return w, nil
}

func (w *watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.scheduleChange()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Warn("Settings", "File watcher error: %v", err)
		case <-w.stopCh:
			return
		}
	}
}

// scheduleChange debounces rapid successive events into one reload.
func (w *watcher) scheduleChange() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(debounceInterval, w.onChange)
}

func (w *watcher) stop() {
	close(w.stopCh)
	w.fsWatcher.Close()

	w.debounceMu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMu.Unlock()
}
