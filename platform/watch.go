package platform

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/milk9111/consolekit/app"
)

// Watcher reports edits to a config file, debounced.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the config file at path for edits.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory so editors that replace the file are caught
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the watched config file path.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			w.Events <- event.Name
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}

// ReloadSystem applies config file edits between ticks. Events are
// drained at tick start so the replacement lands inside the
// single-writer-per-tick window.
type ReloadSystem struct {
	Watcher *Watcher
}

func (s *ReloadSystem) Update(a *app.App) {
	if s == nil || s.Watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-s.Watcher.Events:
			if !ok {
				return
			}
			cfg, err := LoadConfig(s.Watcher.path)
			if err != nil {
				log.Warn("config reload failed", "path", s.Watcher.path, "err", err)
				continue
			}
			app.Insert(a, ConfigResource, cfg)
			log.Info("config reloaded", "path", s.Watcher.path, "mode", cfg.Mode)
		case err, ok := <-s.Watcher.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", "err", err)
		default:
			return
		}
	}
}
