package cardfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the card file whenever it changes on disk, until the
// context is canceled. The parent directory is watched rather than the
// file itself, so atomic rename-over-replace (the usual editor and
// deploy behavior) keeps working. Events are debounced because a single
// save often arrives as several write events.
//
// Reload failures are logged and the previous snapshot stays active;
// in-flight queries are never affected either way.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	s.logger.Info("watching card file", zap.String("path", s.path))

	var pending *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(s.debounce)
				fire = pending.C
			} else {
				pending.Reset(s.debounce)
			}

		case <-fire:
			pending = nil
			fire = nil
			if err := s.Load(); err != nil {
				s.logger.Error("card reload failed, keeping previous snapshot", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("card file watcher error", zap.Error(err))
		}
	}
}
