package hq

import (
	"context"

	"github.com/quayside-io/hq/queue"
)

// Admin is the queue admin component: CRUD over queue definitions,
// with validation applied uniformly at create and update time
// regardless of which adapter (HTTP, CLI, future gRPC) calls in.
type Admin struct {
	store QueueAdmin
}

// NewAdmin creates an Admin backed by store.
func NewAdmin(store QueueAdmin) *Admin {
	return &Admin{store: store}
}

func validateLimits(maxAttempts, visibilityTimeoutSeconds int) error {
	if maxAttempts < 1 || visibilityTimeoutSeconds < 1 {
		return ErrValidation
	}
	return nil
}

// CreateQueue validates maxAttempts and visibilityTimeoutSeconds (both
// must be >= 1) and creates the queue. Returns ErrValidation for
// out-of-range numbers and ErrConflict if name is already in use.
func (a *Admin) CreateQueue(ctx context.Context, name string, maxAttempts, visibilityTimeoutSeconds int) (*queue.Queue, error) {
	if err := validateLimits(maxAttempts, visibilityTimeoutSeconds); err != nil {
		return nil, err
	}
	return a.store.CreateQueue(ctx, name, maxAttempts, visibilityTimeoutSeconds)
}

// GetQueue returns the named queue, or (nil, nil) if it does not exist.
func (a *Admin) GetQueue(ctx context.Context, name string) (*queue.Queue, error) {
	return a.store.GetQueue(ctx, name)
}

// ListQueues returns all queues ordered by name ascending.
func (a *Admin) ListQueues(ctx context.Context) ([]*queue.Queue, error) {
	return a.store.ListQueues(ctx)
}

// UpdateQueue applies patch to the named queue, validating any present
// fields. An empty patch is a no-op.
func (a *Admin) UpdateQueue(ctx context.Context, name string, patch queue.Patch) (*queue.Queue, error) {
	if patch.MaxAttempts != nil && *patch.MaxAttempts < 1 {
		return nil, ErrValidation
	}
	if patch.VisibilityTimeoutSeconds != nil && *patch.VisibilityTimeoutSeconds < 1 {
		return nil, ErrValidation
	}
	return a.store.UpdateQueue(ctx, name, patch)
}

// DeleteQueue removes the named queue and cascades to its messages.
func (a *Admin) DeleteQueue(ctx context.Context, name string) error {
	return a.store.DeleteQueue(ctx, name)
}
