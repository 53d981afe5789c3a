package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a single state file. The parent directory is
// watched so editors that replace the file by rename are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan string
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The directory must exist.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		changes: make(chan string, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()

	log.Printf("Watching for state changes in: %s", dir)
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.changes)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about Write and Create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			// Coalesce bursts: a pending notification already covers this one
			select {
			case w.changes <- event.Name:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// Changes delivers the file path after each write. It is closed when the watcher stops.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Errors delivers watcher failures without blocking the event loop
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
