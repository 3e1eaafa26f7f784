package levels

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a source must stay untouched before it is reported.
const settle = 100 * time.Millisecond

// Watcher follows a fixed set of level source files. Editors save in bursts
// (truncate, write, rename over), so each burst on a source is reported once
// on Changed, after the file has been quiet for settle. Other files in the
// same directories are ignored.
type Watcher struct {
	fs      *fsnotify.Watcher
	sources map[string]struct{}

	Changed chan string
	Errors  chan error

	done chan struct{}
	once sync.Once
}

// NewWatcher watches the given level source paths. The files may not exist
// yet but their directories must.
func NewWatcher(sources ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:      fw,
		sources: make(map[string]struct{}, len(sources)),
		Changed: make(chan string, len(sources)),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, src := range sources {
		abs, err := filepath.Abs(src)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("levels: watch %s: %w", src, err)
		}
		w.sources[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("levels: watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

// Close stops watching. Changed and Errors are closed once the watch
// goroutine has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Changed)

	// Sources written to since they were last reported, with the time they
	// become quiet.
	pending := make(map[string]time.Time)
	timer := time.NewTimer(settle)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			path, ok := w.source(event)
			if !ok {
				continue
			}
			pending[path] = time.Now().Add(settle)
			timer.Reset(settle)

		case <-timer.C:
			now := time.Now()
			var next time.Duration
			for path, quiet := range pending {
				if wait := quiet.Sub(now); wait > 0 {
					if next == 0 || wait < next {
						next = wait
					}
					continue
				}
				delete(pending, path)
				select {
				case w.Changed <- path:
				case <-w.done:
					return
				}
			}
			if next > 0 {
				timer.Reset(next)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}

// source maps an event to the watched source it rewrote. Removing or renaming
// a source away is not a change worth compiling; the write that follows is.
func (w *Watcher) source(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}
	path := filepath.Clean(event.Name)
	_, ok := w.sources[path]
	return path, ok
}
