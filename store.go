package hq

import (
	"context"
	"encoding/json"

	"github.com/quayside-io/hq/delivery"
	"github.com/quayside-io/hq/queue"

	"github.com/google/uuid"
)

// SweepResult reports how many leased messages a sweep reconciled.
type SweepResult struct {
	// Unlocked counts messages returned to ready (lease expired,
	// attempts <= max_attempts).
	Unlocked int64
	// Retired counts messages moved to failed (lease expired,
	// attempts > max_attempts).
	Retired int64
}

// QueueAdmin is the storage contract for queue definition CRUD.
//
// Implementations enforce uniqueness of Name but may leave numeric
// field validation to the caller; Admin validates
// before calling through.
type QueueAdmin interface {
	// CreateQueue inserts a new queue. It returns ErrConflict if name
	// is already in use.
	CreateQueue(ctx context.Context, name string, maxAttempts, visibilityTimeoutSeconds int) (*queue.Queue, error)

	// GetQueue returns the named queue, or (nil, nil) if it does not
	// exist.
	GetQueue(ctx context.Context, name string) (*queue.Queue, error)

	// ListQueues returns all queues ordered by name ascending.
	ListQueues(ctx context.Context) ([]*queue.Queue, error)

	// UpdateQueue applies patch to the named queue. An empty patch is a
	// no-op. Returns ErrConflict on a name collision (not reachable via
	// Patch today, but implementations must still surface it).
	UpdateQueue(ctx context.Context, name string, patch queue.Patch) (*queue.Queue, error)

	// DeleteQueue removes the named queue and, via referential cascade,
	// all of its messages. Deleting a queue that does not exist is not
	// an error.
	DeleteQueue(ctx context.Context, name string) error
}

// MessageStore is the storage contract for the message lifecycle.
type MessageStore interface {
	// Enqueue validates body as well-formed JSON and inserts a new
	// ready message on queueName. Returns ErrBadInput for malformed
	// JSON, and an error wrapping ErrBadInput when the queue does not
	// exist (a missing queue is reported as an error, not as an empty
	// result).
	Enqueue(ctx context.Context, queueName string, body json.RawMessage) (uuid.UUID, error)

	// Receive atomically selects and leases the oldest eligible ready
	// message on queueName, incrementing its attempt count. Returns
	// (nil, nil) if no eligible message exists, including when
	// queueName does not name a known queue.
	Receive(ctx context.Context, queueName string) (*delivery.Record, error)

	// Complete transitions a leased message to completed. It is a
	// no-op, not an error, if the message is not currently leased.
	Complete(ctx context.Context, id uuid.UUID) error

	// Fail transitions a leased message to failed. It is a no-op, not
	// an error, if the message is not currently leased.
	Fail(ctx context.Context, id uuid.UUID) error

	// SweepExpiredLeases reconciles every leased message whose
	// visibility timeout has elapsed: messages with attempts <=
	// max_attempts return to ready, messages with attempts >
	// max_attempts retire to failed.
	SweepExpiredLeases(ctx context.Context) (SweepResult, error)

	// SampleRecent returns up to limit messages ordered by UpdatedAt
	// descending (ties broken by InsertedAt, then LockedAt, then
	// CompletedAt, then FailedAt, all descending), for dashboard
	// display.
	SampleRecent(ctx context.Context, limit int) ([]*delivery.Record, error)
}

// Store is the full persistence contract the lifecycle engine, queue
// admin, sweeper, and dashboard are built on.
type Store interface {
	QueueAdmin
	MessageStore
}
