package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/niko-dev25/threadirc/internal/core/domain"
)

const forumKey = "threadirc:forum"

// ForumStore persists the whole forum aggregate as one JSON value under a
// single Redis key.
type ForumStore struct {
	client *redis.Client
}

// NewForumStore creates a ForumStore wrapping the given Redis client.
func NewForumStore(client *redis.Client) *ForumStore {
	return &ForumStore{client: client}
}

// Load fetches and decodes the forum document. A missing key, invalid JSON
// or a document failing the shape check all surface as
// domain.ErrAggregateNotFound so the caller can reseed.
func (s *ForumStore) Load(ctx context.Context) (*domain.Forum, error) {
	raw, err := s.client.Get(ctx, forumKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrAggregateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("forum load: %w", err)
	}

	var forum domain.Forum
	if err := json.Unmarshal(raw, &forum); err != nil {
		return nil, domain.ErrAggregateNotFound
	}
	if !forum.ShapeValid() {
		return nil, domain.ErrAggregateNotFound
	}
	return &forum, nil
}

// Save replaces the stored document wholesale. No TTL: the forum is the
// system of record, not a cache.
func (s *ForumStore) Save(ctx context.Context, forum *domain.Forum) error {
	raw, err := json.Marshal(forum)
	if err != nil {
		return fmt.Errorf("forum encode: %w", err)
	}
	if err := s.client.Set(ctx, forumKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("forum save: %w", err)
	}
	return nil
}
