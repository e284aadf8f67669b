package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quayside-io/hq"
	"github.com/quayside-io/hq/queue"

	"github.com/google/uuid"
)

// CreateQueue inserts a new queue. If a queue named name already
// exists, ErrConflict is returned.
func (s *Store) CreateQueue(ctx context.Context, name string, maxAttempts, visibilityTimeoutSeconds int) (*queue.Queue, error) {
	model := &queueModel{
		ID:                       uuid.New(),
		Name:                     name,
		MaxAttempts:              maxAttempts,
		VisibilityTimeoutSeconds: visibilityTimeoutSeconds,
	}
	if _, err := s.db.NewInsert().Model(model).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: queue %q already exists", hq.ErrConflict, name)
		}
		return nil, fmt.Errorf("sqlstore: create queue: %w", err)
	}
	return s.GetQueue(ctx, name)
}

// GetQueue returns the named queue, or (nil, nil) if it does not
// exist: a missing queue is an empty result, not a hard error, on
// every read path.
func (s *Store) GetQueue(ctx context.Context, name string) (*queue.Queue, error) {
	var model queueModel
	err := s.db.NewSelect().
		Model(&model).
		Where("name = ?", name).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlstore: get queue: %w", err)
	}
	return model.toQueue(), nil
}

// ListQueues returns every queue, ordered by name.
func (s *Store) ListQueues(ctx context.Context) ([]*queue.Queue, error) {
	var models []*queueModel
	err := s.db.NewSelect().
		Model(&models).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: list queues: %w", err)
	}
	queues := make([]*queue.Queue, len(models))
	for i, m := range models {
		queues[i] = m.toQueue()
	}
	return queues, nil
}

// UpdateQueue applies patch to the named queue and returns the
// updated row. A nil field in patch leaves the corresponding column
// unchanged, matching the original's conditionally-built UPDATE.
func (s *Store) UpdateQueue(ctx context.Context, name string, patch queue.Patch) (*queue.Queue, error) {
	if patch.IsEmpty() {
		return s.GetQueue(ctx, name)
	}

	q := s.db.NewUpdate().Model((*queueModel)(nil)).Where("name = ?", name)
	if patch.MaxAttempts != nil {
		q = q.Set("max_attempts = ?", *patch.MaxAttempts)
	}
	if patch.VisibilityTimeoutSeconds != nil {
		q = q.Set("visibility_timeout_seconds = ?", *patch.VisibilityTimeoutSeconds)
	}
	if _, err := q.Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: update queue %q", hq.ErrConflict, name)
		}
		return nil, fmt.Errorf("sqlstore: update queue: %w", err)
	}
	return s.GetQueue(ctx, name)
}

// DeleteQueue removes the named queue. Its messages cascade-delete
// via the foreign key declared in init.go.
func (s *Store) DeleteQueue(ctx context.Context, name string) error {
	if _, err := s.db.NewDelete().
		Model((*queueModel)(nil)).
		Where("name = ?", name).
		Exec(ctx); err != nil {
		return fmt.Errorf("sqlstore: delete queue: %w", err)
	}
	return nil
}
