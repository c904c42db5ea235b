// Package memory implements an in-memory roster store for development
// and testing.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"grindtrack/internal/domain"
)

// Store keeps the roster in process memory. Load and Save copy through a
// JSON round trip so callers can never alias the stored slices.
type Store struct {
	mu   sync.Mutex
	data []byte
}

var _ domain.RosterStore = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Load returns the stored roster, empty when nothing has been saved.
func (s *Store) Load(ctx context.Context) ([]domain.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return []domain.Person{}, nil
	}
	var people []domain.Person
	if err := json.Unmarshal(s.data, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// Save replaces the stored roster.
func (s *Store) Save(ctx context.Context, people []domain.Person) error {
	data, err := json.Marshal(people)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}
