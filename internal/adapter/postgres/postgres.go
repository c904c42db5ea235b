// Package postgres implements a roster store backed by PostgreSQL. The
// roster is one JSONB row, mirroring the blob contract of the other
// stores rather than a normalised schema.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"grindtrack/internal/domain"
)

// Store persists the roster in a single-row PostgreSQL table.
type Store struct {
	sql *sql.DB
}

var _ domain.RosterStore = (*Store)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*Store, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	store := &Store{sql: s}
	if err := store.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	stmt := `CREATE TABLE IF NOT EXISTS roster (
		id INT PRIMARY KEY CHECK (id = 1),
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);`
	if _, err := s.sql.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Load reads the roster row, empty when no roster has been saved yet.
func (s *Store) Load(ctx context.Context) ([]domain.Person, error) {
	var data []byte
	err := s.sql.QueryRowContext(ctx, "SELECT data FROM roster WHERE id = 1;").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Person{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var people []domain.Person
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if people == nil {
		people = []domain.Person{}
	}
	return people, nil
}

// Save upserts the roster row.
func (s *Store) Save(ctx context.Context, people []domain.Person) error {
	data, err := json.Marshal(people)
	if err != nil {
		return err
	}
	_, err = s.sql.ExecContext(ctx,
		`INSERT INTO roster (id, data, updated_at) VALUES (1, $1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;`,
		data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}
