// Package watch reports changes to the file shown in the Scene screen.
package watch

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"meshview/internal/eventbus"
)

// DefaultDebounce coalesces the bursts of events editors and exporters
// produce for one save
const DefaultDebounce = 250 * time.Millisecond

// Watcher follows at most one file and publishes SourceChangedEvent on
// the bus after it was written or replaced
type Watcher struct {
	bus      eventbus.EventBus
	debounce time.Duration

	mu    sync.Mutex
	fw    *fsnotify.Watcher
	path  string
	done  chan struct{}
	timer *time.Timer
}

// New creates an idle watcher
func New(bus eventbus.EventBus, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{bus: bus, debounce: debounce}
}

// Watch replaces the watched file with path. The parent directory is
// watched so files replaced by rename are still seen.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fw != nil && w.path == abs {
		return nil
	}
	w.stopLocked()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w.fw = fw
	w.path = abs
	w.done = make(chan struct{})
	go w.loop(fw, abs, w.done)
	log.Printf("Watch: watching %s", abs)
	return nil
}

// Path returns the watched file, or "" when idle
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Stop ends the current watch. It is safe to call when idle.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Watcher) stopLocked() {
	if w.fw == nil {
		return
	}
	close(w.done)
	w.fw.Close()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	log.Printf("Watch: stopped watching %s", w.path)
	w.fw = nil
	w.path = ""
	w.done = nil
}

func (w *Watcher) loop(fw *fsnotify.Watcher, path string, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule(path, done)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			log.Printf("Watch: error on %s: %v", path, err)
		}
	}
}

func (w *Watcher) schedule(path string, done <-chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	// the timer belongs to whatever watch is current
	select {
	case <-done:
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-done:
			return
		default:
		}
		log.Printf("Watch: %s changed", path)
		w.bus.Publish(eventbus.SourceChangedEvent{Path: path})
	})
}
