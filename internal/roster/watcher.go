package roster

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay collapses editor write bursts (truncate+write, rename
// into place) into a single reload event
const debounceDelay = 300 * time.Millisecond

// WatchEvent signals that the roster file changed on disk
type WatchEvent struct {
	Path string
}

// Watcher monitors the roster CSV for external changes. The writing
// side does not need to know about this system; any structural change
// eventually produces an event on Events.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string // absolute path of the roster file

	mu       sync.Mutex
	debounce map[string]*time.Timer

	Events chan WatchEvent
	Errors chan error
	done   chan struct{}
}

// NewWatcher creates a watcher for the given roster file. The parent
// directory is watched so replace-by-rename saves are seen too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      abs,
		debounce:  make(map[string]*time.Timer),
		Events:    make(chan WatchEvent, 16),
		Errors:    make(chan error, 4),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and cancels pending debounce timers
func (w *Watcher) Stop() error {
	close(w.done)

	w.mu.Lock()
	for _, t := range w.debounce {
		t.Stop()
	}
	w.mu.Unlock()

	return w.fsWatcher.Close()
}

// watchLoop handles fsnotify events
func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// Error channel full, drop
			}
		}
	}
}

// handleFSEvent debounces write/create/rename events for the roster file
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	// A new timer for the same path implicitly cancels the previous one
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, exists := w.debounce[event.Name]; exists {
		t.Stop()
	}
	w.debounce[event.Name] = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		delete(w.debounce, event.Name)
		w.mu.Unlock()

		select {
		case w.Events <- WatchEvent{Path: w.path}:
		case <-w.done:
		}
	})
}
