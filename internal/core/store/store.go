// Package store owns the in-memory forum aggregate. It is the single writer:
// every mutation runs under its lock and is written back to the repository
// wholesale before the next one starts.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
)

// Store holds the aggregate and the injected persistence port.
type Store struct {
	repo ports.ForumRepository
	log  zerolog.Logger

	mu    sync.RWMutex
	forum *domain.Forum
}

// Open loads the aggregate from the repository. A missing, corrupt, or
// badly-shaped document is replaced by the seeded default dataset, which is
// persisted before first use.
func Open(ctx context.Context, repo ports.ForumRepository, log zerolog.Logger) (*Store, error) {
	forum, err := repo.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAggregateNotFound):
		log.Info().Msg("no usable forum document, seeding defaults")
		forum = domain.SeedForum(time.Now().UTC())
		if err := repo.Save(ctx, forum); err != nil {
			return nil, fmt.Errorf("persist seeded forum: %w", err)
		}
	default:
		return nil, fmt.Errorf("load forum: %w", err)
	}
	return &Store{repo: repo, log: log, forum: forum}, nil
}

// View runs fn with read access to the aggregate. fn must not retain
// references past its return.
func (s *Store) View(fn func(f *domain.Forum) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.forum)
}

// Update runs fn with exclusive access and, when fn succeeds, saves the
// aggregate wholesale. The in-memory aggregate stays authoritative even if
// the save fails; the failure is logged and returned so the caller can
// surface it.
func (s *Store) Update(ctx context.Context, fn func(f *domain.Forum) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.forum); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, s.forum); err != nil {
		s.log.Error().Err(err).Msg("forum save failed, in-memory state retained")
		return fmt.Errorf("save forum: %w", err)
	}
	return nil
}
