package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to the audit
// repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event. Called from dispatcher workers; an
// insert failure is reported to the worker, which logs and drops the event.
func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	s.log.Debug().
		Str("actor", event.Actor.Username).
		Str("action", string(event.Action)).
		Str("target", event.TargetID).
		Msg("audit event recorded")
	return nil
}

// Recent returns the newest events, capped at 100.
func (s *auditService) Recent(ctx context.Context, limit int64) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.Recent(ctx, limit)
}
