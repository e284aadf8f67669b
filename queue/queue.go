package queue

import (
	"time"

	"github.com/google/uuid"
)

// Queue is a named stream with an attempt budget and a visibility
// timeout policy.
type Queue struct {
	ID                       uuid.UUID
	Name                     string
	MaxAttempts              int
	VisibilityTimeoutSeconds int
	InsertedAt               time.Time
	UpdatedAt                time.Time
}

// Patch describes an optional partial update to a Queue. Nil fields
// are left unchanged. A Patch with both fields nil is a no-op.
type Patch struct {
	MaxAttempts              *int
	VisibilityTimeoutSeconds *int
}

// IsEmpty reports whether the patch specifies no fields to update.
func (p Patch) IsEmpty() bool {
	return p.MaxAttempts == nil && p.VisibilityTimeoutSeconds == nil
}
