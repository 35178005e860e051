package ports

import (
	"context"

	"github.com/niko-dev25/threadirc/internal/core/domain"
)

// ForumRepository is the injected load/save pair for the forum aggregate.
// The whole aggregate is one document; Save replaces it wholesale.
//
// Load returns domain.ErrAggregateNotFound when the document is absent,
// unparseable, or fails the shape check; the store treats all three the
// same way and reseeds.
type ForumRepository interface {
	Load(ctx context.Context) (*domain.Forum, error)
	Save(ctx context.Context, forum *domain.Forum) error
}

// SessionStore persists the "current session user" snapshot under its own
// key, separate from the forum document. Get returns
// domain.ErrAggregateNotFound when no session is stored.
type SessionStore interface {
	Put(ctx context.Context, user domain.User) error
	Get(ctx context.Context) (*domain.User, error)
	Clear(ctx context.Context) error
}

// AuditRepository persists the moderation audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	Recent(ctx context.Context, limit int64) ([]domain.AuditEvent, error)
}
