package ports

import (
	"context"

	"github.com/niko-dev25/threadirc/internal/core/domain"
)

// AuditService consumes audit events off the dispatcher and serves the
// moderation log.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
	Recent(ctx context.Context, limit int64) ([]domain.AuditEvent, error)
}
