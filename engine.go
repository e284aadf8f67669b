package hq

import (
	"context"
	"encoding/json"

	"github.com/quayside-io/hq/delivery"

	"github.com/google/uuid"
)

// Engine is the lifecycle engine: a thin, stateless policy layer over
// a MessageStore. Engine enforces the state machine and
// validates inputs; it owns no state beyond the store handle and takes
// no process-wide lock. Correctness under concurrent callers rests on
// the store's own transactional guarantees.
//
// All methods are safe for concurrent use.
type Engine struct {
	store MessageStore
}

// NewEngine creates an Engine backed by store.
func NewEngine(store MessageStore) *Engine {
	return &Engine{store: store}
}

// Enqueue validates body as well-formed JSON and hands it to the store.
//
// Enqueue returns ErrBadInput if body is not well-formed JSON.
func (e *Engine) Enqueue(ctx context.Context, queueName string, body json.RawMessage) (uuid.UUID, error) {
	if !json.Valid(body) {
		return uuid.Nil, ErrBadInput
	}
	return e.store.Enqueue(ctx, queueName, body)
}

// Receive leases the oldest eligible ready message on queueName, or
// returns (nil, nil) if none is eligible.
func (e *Engine) Receive(ctx context.Context, queueName string) (*delivery.Record, error) {
	return e.store.Receive(ctx, queueName)
}

// Complete marks a leased message as completed. Idempotent: completing
// a message that is not currently leased is a silent no-op.
func (e *Engine) Complete(ctx context.Context, id uuid.UUID) error {
	return e.store.Complete(ctx, id)
}

// Fail marks a leased message as failed. Idempotent: failing a message
// that is not currently leased is a silent no-op.
func (e *Engine) Fail(ctx context.Context, id uuid.UUID) error {
	return e.store.Fail(ctx, id)
}
