// Package redis implements a roster store backed by a single Redis key,
// matching the original hosted-KV deployment.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"grindtrack/internal/domain"
)

// rosterKey is the key holding the whole roster as one JSON blob.
const rosterKey = "grindtrack:people"

// Store persists the roster in Redis.
type Store struct {
	client *redis.Client
}

var _ domain.RosterStore = (*Store)(nil)

// Open connects to Redis and pings it.
func Open(addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Store{client: client}, nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Load reads the roster blob, empty when the key does not exist yet.
func (s *Store) Load(ctx context.Context) ([]domain.Person, error) {
	data, err := s.client.Get(ctx, rosterKey).Bytes()
	if errors.Is(err, redis.Nil) {
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

// Save replaces the roster blob.
func (s *Store) Save(ctx context.Context, people []domain.Person) error {
	data, err := json.Marshal(people)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, rosterKey, data, 0).Err(); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}
