package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long Watch waits after the last change before
// reloading.
var watchDebounce = 500 * time.Millisecond

// Watch reloads content whenever a file under Config.ContentDir changes,
// until ctx is done. A failed reload is logged and the previous content
// keeps serving.
func (a *App) Watch(ctx context.Context) error {
	dir := a.Config.ContentDir
	if dir == "" {
		return errors.New("folio: watch: no content directory configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("folio: watch: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("folio: watch %s: %w", dir, err)
	}
	log.Printf("Watching %s for changes", dir)

	var (
		mu     sync.Mutex
		reload *time.Timer
	)
	defer func() {
		mu.Lock()
		if reload != nil {
			reload.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					log.Printf("Error watching new directory %s: %v", event.Name, err)
				}
			}

			mu.Lock()
			if reload != nil {
				reload.Stop()
			}
			reload = time.AfterFunc(watchDebounce, func() {
				if ctx.Err() != nil {
					return
				}
				if err := a.Load(); err != nil {
					log.Printf("Reload failed, keeping previous content: %v", err)
					return
				}
				log.Printf("Content reloaded after change to %s", event.Name)
			})
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
