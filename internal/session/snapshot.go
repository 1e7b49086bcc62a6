package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/openpersona/console/internal/domain"
)

// Snapshot is the subset of store state that survives restarts. Cached
// collections are deliberately excluded; they are refetched on first use.
type Snapshot struct {
	Token            string       `json:"token,omitempty"`
	User             *domain.User `json:"user,omitempty"`
	Plan             *domain.Plan `json:"plan,omitempty"`
	SidebarCollapsed bool         `json:"sidebarCollapsed,omitempty"`
}

// Snapshot returns the persistable subset of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Token:            s.token,
		User:             s.user,
		Plan:             s.plan,
		SidebarCollapsed: s.sidebarCollapsed,
	}
}

// persist writes the snapshot to disk. Failures are logged, never fatal:
// losing persistence degrades to a fresh login on next start.
func (s *Store) persist() {
	if s.fs == nil || s.snapshotPath == "" {
		return
	}
	snap := s.Snapshot()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.logger.Error("Failed to encode session snapshot", "error", err)
		return
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.snapshotPath), 0o700); err != nil {
		s.logger.Error("Failed to create session state directory", "error", err)
		return
	}
	if err := afero.WriteFile(s.fs, s.snapshotPath, data, 0o600); err != nil {
		s.logger.Error("Failed to write session snapshot", "path", s.snapshotPath, "error", err)
	}
}

// rehydrate loads a previously persisted snapshot. A missing file is not an
// error; a corrupt one is reported and otherwise ignored.
func (s *Store) rehydrate() error {
	if s.fs == nil || s.snapshotPath == "" {
		return nil
	}
	data, err := afero.ReadFile(s.fs, s.snapshotPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	s.apply(snap)
	return nil
}

// apply installs a snapshot, rederiving state the snapshot does not carry.
func (s *Store) apply(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = snap.Token
	s.user = snap.User
	s.plan = snap.Plan
	if s.plan == nil && snap.User != nil {
		s.plan = snap.User.Plan
	}
	s.isAdmin = snap.User.Admin()
	s.sidebarCollapsed = snap.SidebarCollapsed
}
