package cfg

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/tesselslate/hazel/internal/log"
)

// Watch reloads the profile at path whenever it is written and sends each
// successfully parsed version on the returned channel. Profiles which fail
// to parse are logged and skipped. The channel is closed once ctx is
// cancelled or the watcher fails.
func Watch(ctx context.Context, path string) (<-chan Profile, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory rather than the file, since many editors replace
	// the file instead of writing to it.
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	ch := make(chan Profile, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()
		for {
			select {
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != filepath.Clean(path) {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				profile, err := LoadProfile(path)
				if err != nil {
					log.Error("Failed to reload config: %s", err)
					continue
				}
				log.Info("Reloaded config")

				// Only the newest profile matters to the receiver.
				select {
				case <-ch:
				default:
				}
				ch <- profile
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("Config watcher error: %s", err)
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
