package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quayside-io/hq"

	"github.com/google/uuid"
)

// Enqueue inserts a new message into queueName, returning its id.
//
// The queue lookup and the insert run inside a single BEGIN IMMEDIATE
// transaction: IMMEDIATE acquires SQLite's write lock up front, so
// concurrent enqueuers serialize against busy_timeout instead of
// racing to upgrade a deferred transaction after reading the queue id.
func (s *Store) Enqueue(ctx context.Context, queueName string, body json.RawMessage) (uuid.UUID, error) {
	if !json.Valid(body) {
		return uuid.Nil, fmt.Errorf("%w: body is not well-formed JSON", hq.ErrBadInput)
	}

	conn, err := beginImmediate(ctx, s.db)
	if err != nil {
		return uuid.Nil, fmt.Errorf("sqlstore: enqueue: %w", err)
	}
	defer conn.rollback(ctx)

	var queueID uuid.UUID
	err = conn.NewSelect().
		Model((*queueModel)(nil)).
		Column("id").
		Where("name = ?", queueName).
		Scan(ctx, &queueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%w: queue %q does not exist", hq.ErrBadInput, queueName)
		}
		return uuid.Nil, fmt.Errorf("sqlstore: enqueue: lookup queue: %w", err)
	}

	model := newMessageModel(queueID, body)
	if _, err := conn.NewInsert().Model(model).Exec(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("sqlstore: enqueue: insert: %w", err)
	}

	if err := conn.commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("sqlstore: enqueue: commit: %w", err)
	}
	return model.ID, nil
}
