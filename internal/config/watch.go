package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events a single save produces.
const reloadDelay = 100 * time.Millisecond

// Watcher reloads a Flappy config file whenever it changes on disk.
// Only the most recent configuration is kept in Changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Changes chan FlappyConfig
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchFlappy starts watching path. The parent directory is watched so that
// editors which replace the file on save are handled.
func WatchFlappy(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Changes: make(chan FlappyConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			pending = time.After(reloadDelay)
		case <-pending:
			pending = nil
			cfg, err := LoadFlappyFile(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendConfig(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendConfig replaces any unread configuration with cfg.
func (w *Watcher) sendConfig(cfg FlappyConfig) {
	select {
	case <-w.Changes:
	default:
	}
	select {
	case w.Changes <- cfg:
	default:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
