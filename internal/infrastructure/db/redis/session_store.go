package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/niko-dev25/threadirc/internal/core/domain"
)

const sessionKey = "threadirc:session"

// SessionStore keeps the current-session user snapshot under its own key,
// separate from the forum document.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put stores the user snapshot, replacing any previous one.
func (s *SessionStore) Put(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

// Get returns the stored snapshot, or domain.ErrAggregateNotFound when
// nothing is stored or the stored value does not decode.
func (s *SessionStore) Get(ctx context.Context) (*domain.User, error) {
	raw, err := s.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrAggregateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, domain.ErrAggregateNotFound
	}
	return &user, nil
}

// Clear removes the stored snapshot. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
