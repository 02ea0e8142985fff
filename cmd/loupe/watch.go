package main

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events editors emit on save.
const reloadDebounce = 150 * time.Millisecond

// imageWatcher decodes the image again whenever its file changes and
// offers the result on images. Only the newest decoded image is kept.
type imageWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	images  chan image.Image
	done    chan struct{}
}

// watchImage watches the directory holding path so renames and atomic
// replacements are seen as well as in-place writes.
func watchImage(path string) (*imageWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w := &imageWatcher{
		watcher: watcher,
		path:    abs,
		images:  make(chan image.Image, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *imageWatcher) loop() {
	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

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
				debounce.Reset(reloadDebounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Println("watcher error:", err)

		case <-debounce.C:
			img, err := decodeImage(w.path)
			if err != nil {
				log.Printf("reload: %v", err)
				continue
			}
			w.offer(img)

		case <-w.done:
			return
		}
	}
}

// offer replaces any image the game loop has not picked up yet.
func (w *imageWatcher) offer(img image.Image) {
	select {
	case <-w.images:
	default:
	}
	w.images <- img
}

// Close stops watching.
func (w *imageWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
