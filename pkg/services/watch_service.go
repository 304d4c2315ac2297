package services

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates the library cache when files under the asset root
// change, so a long-running serve process picks up new assets without a
// restart. Bursts of events collapse into one refresh via a debounce
// timer.
type Watcher struct {
	watcher *fsnotify.Watcher
	timer   *time.Timer
	delay   time.Duration
	done    chan struct{}
}

// WatchAssetRoot starts watching the asset root recursively. The
// returned watcher must be closed by the caller.
func WatchAssetRoot(root string, delay time.Duration) (*Watcher, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		delay:   delay,
		done:    make(chan struct{}),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if addErr := fsw.Add(path); addErr != nil {
			log.Printf("Watch failed for %s: %v", path, addErr)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				// New directories need their own watch to keep the
				// recursion complete.
				_ = w.watcher.Add(event.Name)
			}
			w.scheduleRefresh()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) scheduleRefresh() {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		log.Println("Asset change detected, refreshing library")
		Invalidate()
	})
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	return w.watcher.Close()
}
