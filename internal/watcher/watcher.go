// Package watcher reports debounced changes to a set of files. The replay
// command uses it to re-run a key script whenever the script or its input
// text is saved.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/vimcore/internal/log"
)

// Watcher sends one notification per burst of writes to the watched files.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]struct{} // cleaned absolute paths
	debounce  time.Duration
	onChange  chan string
	done      chan struct{}
	stopOnce  sync.Once
}

// Config holds watcher configuration options.
type Config struct {
	Paths    []string
	Debounce time.Duration
}

// DefaultConfig watches paths with a 200ms debounce.
func DefaultConfig(paths ...string) Config {
	return Config{Paths: paths, Debounce: 200 * time.Millisecond}
}

// New creates a watcher for the files in cfg. The files need not exist yet;
// their directories must.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}

	files := make(map[string]struct{}, len(cfg.Paths))
	for _, p := range cfg.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = struct{}{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		files:     files,
		debounce:  cfg.Debounce,
		onChange:  make(chan string, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching. The returned channel receives the path of the last
// file changed in each debounced burst.
func (w *Watcher) Start() (<-chan string, error) {
	// Watch directories: editors often replace files by renaming, which
	// drops a watch placed on the file itself.
	dirs := map[string]struct{}{}
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}

	go w.loop()
	return w.onChange, nil
}

// Stop terminates the watcher and releases resources. Safe to call twice.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}

func (w *Watcher) loop() {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	var last string

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			last = event.Name
			log.Debug(log.CatWatcher, "file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			select {
			case w.onChange <- last:
			default:
				// A notification is already waiting; it covers this burst too.
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err)

		case <-w.done:
			timer.Stop()
			return
		}
	}
}

// isRelevantEvent reports whether event saves one of the watched files.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
