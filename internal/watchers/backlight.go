package watchers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/hoppxi/shades/pkg/backlight"
)

// WatchBacklight calls onChange with the device's status once, then again
// each time one of its reading files is written. It blocks until ctx is done.
func WatchBacklight(ctx context.Context, fsys afero.Fs, path string, onChange func(*backlight.Status)) error {
	status, err := backlight.Load(fsys, path)
	if err != nil {
		return err
	}
	onChange(status)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("watching backlight")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !backlight.IsReadingFile(filepath.Base(event.Name)) {
				continue
			}

			status, err := backlight.Load(fsys, path)
			if err != nil {
				// writers truncate before writing, so a half-written file is expected
				log.Debug().Err(err).Str("file", event.Name).Msg("skipping unreadable backlight state")
				continue
			}
			onChange(status)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher failed: %w", err)
		}
	}
}
