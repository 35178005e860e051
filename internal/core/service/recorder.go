package service

import "github.com/niko-dev25/threadirc/internal/core/domain"

// Recorder receives audit events from the services. The production
// implementation is the queue dispatcher; recording must never block or fail
// the originating operation.
type Recorder interface {
	Record(event domain.AuditEvent)
}

type nopRecorder struct{}

func (nopRecorder) Record(domain.AuditEvent) {}

// NopRecorder returns a Recorder that discards everything.
func NopRecorder() Recorder {
	return nopRecorder{}
}
