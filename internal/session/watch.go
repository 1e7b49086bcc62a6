package session

import (
	"context"
	"path/filepath"
	"reflect"

	"github.com/fsnotify/fsnotify"
)

// WatchSnapshot follows external rewrites of the snapshot file and folds
// them into the live store, so a second console process (or the CLI)
// signing in or out is picked up without a restart. It blocks until ctx is
// canceled; run it in its own goroutine.
//
// The watcher sits on the OS filesystem. When the store was built on a
// memory-backed afero.Fs there is nothing to watch and this returns nil
// immediately after ctx is done.
func (s *Store) WatchSnapshot(ctx context.Context) error {
	if s.snapshotPath == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors and atomic writers replace
	// the file and would silently detach a file-level watch.
	if err := watcher.Add(filepath.Dir(s.snapshotPath)); err != nil {
		return err
	}

	target := filepath.Clean(s.snapshotPath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.reloadSnapshot()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("Snapshot watcher error", "error", err)
		}
	}
}

// reloadSnapshot re-reads the snapshot file and applies it if it differs
// from the live state. Our own persist() writes trigger events too; the
// equality check keeps those from looping.
func (s *Store) reloadSnapshot() {
	before := s.Snapshot()
	if err := s.rehydrate(); err != nil {
		s.logger.Warn("Ignoring unreadable snapshot rewrite", "path", s.snapshotPath, "error", err)
		return
	}
	after := s.Snapshot()
	if reflect.DeepEqual(before, after) {
		return
	}
	s.logger.Info("Session snapshot changed externally, state reloaded",
		"authenticated", after.Token != "")
}
