package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/inoxlang/rson/internal/source"
)

const WATCH_DEBOUNCE_DURATION = 100 * time.Millisecond

var ErrCannotWatchStdin = errors.New("the standard input cannot be watched")

// watchFiles calls onChange after the files are written, bursts of events result in a single call.
// watchFiles returns when ctx is done, onChange is not called after that.
func watchFiles(ctx context.Context, paths []string, logger zerolog.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if path == source.STDIN_PATH {
			return ErrCannotWatchStdin
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	var (
		lock    sync.Mutex
		stopped bool
	)

	debounced := debounce.New(WATCH_DEBOUNCE_DURATION)
	run := func() {
		lock.Lock()
		defer lock.Unlock()
		if !stopped {
			onChange()
		}
	}

	defer func() {
		lock.Lock()
		defer lock.Unlock()
		stopped = true
	}()

	logger.Debug().Strs("paths", paths).Msg("watching files")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			logger.Debug().Str("path", event.Name).Stringer("op", event.Op).Msg("file event")

			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				debounced(run)
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				//editors often replace the file, the new file is watched if it already exists.
				if err := watcher.Add(event.Name); err == nil {
					debounced(run)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watcher error")
		}
	}
}
