// Package audit records best-effort audit rows after mutations.
// Failures are logged and never surfaced to the caller.
package audit

import (
	"context"
	"log"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
)

// Entry describes one mutation to record.
type Entry struct {
	UserID     uint
	Action     string
	EntityType string
	EntityID   string
	Metadata   models.JSON
}

// Recorder writes audit entries.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

type recorder struct {
	repo repositories.AuditRepository
}

// NewRecorder creates a repository-backed recorder.
func NewRecorder(repo repositories.AuditRepository) Recorder {
	return &recorder{repo: repo}
}

func (r *recorder) Record(ctx context.Context, entry Entry) {
	row := &models.AuditLog{
		UserID:     entry.UserID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Metadata:   entry.Metadata,
	}
	if err := r.repo.Create(ctx, row); err != nil {
		log.Printf("audit write failed (action=%s entity=%s/%s): %v",
			entry.Action, entry.EntityType, entry.EntityID, err)
	}
}

// NopRecorder discards every entry. Useful in tests.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Entry) {}
