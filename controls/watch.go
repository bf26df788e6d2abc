package controls

import (
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a controls file into a Store whenever it is written.  A
// file that fails to decode leaves the Store unchanged, and a file without an
// animationA key keeps the Store's current toggle.
type Watcher struct {
	path    string
	store   *Store
	log     *log.Logger
	fsWatch *fsnotify.Watcher
	done    chan struct{}
	exited  chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Watch loads path into store and keeps reloading it until Close.  The
// parent directory is watched so editors that replace the file on save are
// picked up.
func Watch(path string, store *Store, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	path = filepath.Clean(path)
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	fc, err := readFile(path)
	if err != nil {
		return nil, err
	}
	store.load(&fc)

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		store:   store,
		log:     logger,
		fsWatch: fsWatch,
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.exited)
	for {
		select {
		case e, ok := <-w.fsWatch.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}
		case err, ok := <-w.fsWatch.Errors:
			if !ok {
				return
			}
			w.log.Error("watching controls", "path", w.path, "err", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	fc, err := readFile(w.path)
	if err != nil {
		w.log.Warn("keeping previous controls", "err", err)
		return
	}
	c := w.store.load(&fc)
	w.log.Info("controls reloaded", "speed", c.Speed, "scale", c.Scale, "degrees", c.Degrees, "animationA", c.AnimationA)
}

// Close stops watching and waits for the reload goroutine to exit.  Calls
// after the first return the first result.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fsWatch.Close()
		<-w.exited
	})
	return w.closeErr
}
