package delivery

import (
	"time"

	"github.com/quayside-io/hq/message"

	"github.com/google/uuid"
)

// Record is a message augmented with the delivery metadata a queue
// storage backend maintains: queue ownership, attempt count, and the
// lease/completion/failure timestamps that determine its State.
//
// Record instances should be treated as snapshots of storage state.
// Mutating fields directly does not change the underlying queue;
// transitions must be performed through a Store.
type Record struct {
	message.Message

	QueueID uuid.UUID
	Queue   string // queue name; populated on Receive and dashboard views

	Attempts uint32

	InsertedAt time.Time
	UpdatedAt  time.Time

	LockedAt    *time.Time
	CompletedAt *time.Time
	FailedAt    *time.Time
}

// State derives the record's lifecycle state from its three nullable
// timestamps, per the invariant that a message is in exactly one of
// ready, leased, completed, or failed.
func (r *Record) State() State {
	switch {
	case r.CompletedAt != nil:
		return Completed
	case r.FailedAt != nil:
		return Failed
	case r.LockedAt != nil:
		return Leased
	default:
		return Ready
	}
}
