package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/store"
)

var discardLogger = zerolog.Nop()

// memForumRepo keeps the aggregate in memory and counts saves.
type memForumRepo struct {
	forum     *domain.Forum
	saveCount int
	saveErr   error
}

func (r *memForumRepo) Load(_ context.Context) (*domain.Forum, error) {
	if r.forum == nil {
		return nil, domain.ErrAggregateNotFound
	}
	return r.forum, nil
}

func (r *memForumRepo) Save(_ context.Context, f *domain.Forum) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.forum = f
	r.saveCount++
	return nil
}

// memSessionStore holds at most one session snapshot.
type memSessionStore struct {
	user *domain.User
}

func (s *memSessionStore) Put(_ context.Context, user domain.User) error {
	clone := user
	s.user = &clone
	return nil
}

func (s *memSessionStore) Get(_ context.Context) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrAggregateNotFound
	}
	clone := *s.user
	return &clone, nil
}

func (s *memSessionStore) Clear(_ context.Context) error {
	s.user = nil
	return nil
}

// captureRecorder collects emitted audit events.
type captureRecorder struct {
	events []domain.AuditEvent
}

func (r *captureRecorder) Record(event domain.AuditEvent) {
	r.events = append(r.events, event)
}

func (r *captureRecorder) last() *domain.AuditEvent {
	if len(r.events) == 0 {
		return nil
	}
	return &r.events[len(r.events)-1]
}

var testSeedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newSeededStore opens a store over the default dataset.
func newSeededStore(t *testing.T) (*store.Store, *memForumRepo) {
	t.Helper()
	repo := &memForumRepo{forum: domain.SeedForum(testSeedTime)}
	st, err := store.Open(context.Background(), repo, discardLogger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st, repo
}
