package hq_test

import (
	"context"
	"encoding/json"

	"github.com/quayside-io/hq"
	"github.com/quayside-io/hq/delivery"
	"github.com/quayside-io/hq/queue"

	"github.com/google/uuid"
)

// stubMessageStore embeds the hq.MessageStore interface unimplemented
// so test doubles can override only the methods they exercise.
type stubMessageStore struct {
	hq.MessageStore
}

func (stubMessageStore) Enqueue(ctx context.Context, queueName string, body json.RawMessage) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (stubMessageStore) Receive(ctx context.Context, queueName string) (*delivery.Record, error) {
	return nil, nil
}

func (stubMessageStore) Complete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (stubMessageStore) Fail(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (stubMessageStore) SweepExpiredLeases(ctx context.Context) (hq.SweepResult, error) {
	return hq.SweepResult{}, nil
}

func (stubMessageStore) SampleRecent(ctx context.Context, limit int) ([]*delivery.Record, error) {
	return nil, nil
}

// stubQueueAdmin is the QueueAdmin analogue of stubMessageStore.
type stubQueueAdmin struct {
	hq.QueueAdmin
}

func (stubQueueAdmin) CreateQueue(ctx context.Context, name string, maxAttempts, visibilityTimeoutSeconds int) (*queue.Queue, error) {
	return &queue.Queue{Name: name, MaxAttempts: maxAttempts, VisibilityTimeoutSeconds: visibilityTimeoutSeconds}, nil
}

func (stubQueueAdmin) GetQueue(ctx context.Context, name string) (*queue.Queue, error) {
	return nil, nil
}

func (stubQueueAdmin) ListQueues(ctx context.Context) ([]*queue.Queue, error) {
	return nil, nil
}

func (stubQueueAdmin) UpdateQueue(ctx context.Context, name string, patch queue.Patch) (*queue.Queue, error) {
	return nil, nil
}

func (stubQueueAdmin) DeleteQueue(ctx context.Context, name string) error {
	return nil
}
