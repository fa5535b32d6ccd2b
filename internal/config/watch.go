package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/asset"
)

// Watcher reports changes of a scene file. Its goroutine only signals; the
// render loop polls Changed and reloads on its own thread.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	changed chan struct{}
	done    chan struct{}
}

// Watch starts watching path. The parent directory is watched so that
// editors replacing the file are noticed.
func Watch(path string) (*Watcher, error) {
	path, err := asset.ResolvePath("", path)
	if err != nil {
		return nil, err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %q", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %q", path)
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				// coalesce bursts of events into one pending change
				select {
				case w.changed <- struct{}{}:
				default:
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Println("config watcher:", err)
		}
	}
}

// Changed reports, without blocking, whether the file changed since the
// last call.
func (w *Watcher) Changed() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

// Path is the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
