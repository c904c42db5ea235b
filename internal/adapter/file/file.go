// Package file implements a roster store backed by a single JSON file on
// disk, matching the original data.json contract.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"grindtrack/internal/domain"
)

// Store persists the roster as pretty-printed JSON at a fixed path.
type Store struct {
	mu   sync.Mutex
	path string
}

var _ domain.RosterStore = (*Store)(nil)

// New creates a file store at path, creating the parent directory and an
// empty data file if they do not exist yet.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return nil, fmt.Errorf("init data file: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// Load reads the roster from disk.
func (s *Store) Load(ctx context.Context) ([]domain.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	var people []domain.Person
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	if people == nil {
		people = []domain.Person{}
	}
	return people, nil
}

// Save writes the roster to a temp file and renames it into place, so a
// crash mid-write never leaves a truncated data file behind.
func (s *Store) Save(ctx context.Context, people []domain.Person) error {
	data, err := json.MarshalIndent(people, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
