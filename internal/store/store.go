// Package store persists the roster file for the CLI host. The engine
// itself never touches the roster file; the store exists so separate
// invocations share one roster and never mutate it concurrently.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/okapiworks/roster/internal/org"
)

// Store reads and writes the roster file, guarded by a file lock.
type Store struct {
	path string
	lock *flock.Flock
}

// New returns a store for the roster file at path, using lockPath to
// serialize invocations.
func New(path, lockPath string) *Store {
	return &Store{path: path, lock: flock.New(lockPath)}
}

// Acquire takes the single-writer lock. It fails rather than blocks
// when another invocation already holds it.
func (s *Store) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(s.lock.Path()), 0o755); err != nil {
		return fmt.Errorf("store: ensure lock dir: %w", err)
	}
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("store: acquire lock %s: %w", s.lock.Path(), err)
	}
	if !ok {
		return fmt.Errorf("store: another roster invocation holds %s", s.lock.Path())
	}
	return nil
}

// Release drops the single-writer lock.
func (s *Store) Release() error {
	return s.lock.Unlock()
}

// Load reads the roster from disk. A missing file is an empty roster.
func (s *Store) Load() (*org.Roster, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &org.Roster{}, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	var roster org.Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", s.path, err)
	}
	return &roster, nil
}

// Save writes the roster back to disk.
func (s *Store) Save(roster *org.Roster) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("store: ensure roster dir: %w", err)
	}
	data, err := yaml.Marshal(roster)
	if err != nil {
		return fmt.Errorf("store: encode roster: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}
