package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quayside-io/hq/delivery"
)

// Receive leases the oldest eligible message in queueName and returns
// it, or (nil, nil) if no message is eligible.
//
// Eligibility and the lease transition happen in one statement: an
// UPDATE whose WHERE clause is a correlated subquery selecting the
// single oldest unlocked, unterminated message under its queue's
// attempt ceiling. Because the id subquery and the row mutation are
// the same SQL statement, no other connection can observe the message
// as eligible and lease it too, with no surrounding transaction
// required.
func (s *Store) Receive(ctx context.Context, queueName string) (*delivery.Record, error) {
	sub := s.db.NewSelect().
		Model((*messageModel)(nil)).
		ColumnExpr("hq_messages.id").
		Join("INNER JOIN hq_queues ON hq_queues.id = hq_messages.queue_id").
		Where("hq_queues.name = ?", queueName).
		Where("hq_messages.completed_at IS NULL").
		Where("hq_messages.locked_at IS NULL").
		Where("hq_messages.failed_at IS NULL").
		Where("hq_messages.attempts < hq_queues.max_attempts").
		Order("hq_messages.updated_at ASC").
		Limit(1)

	var model messageModel
	err := s.db.NewUpdate().
		Model(&model).
		Set("attempts = attempts + 1").
		Set("locked_at = current_timestamp").
		Where("id = (?)", sub).
		Returning("id, args, attempts, queue_id, inserted_at, updated_at, locked_at, completed_at, failed_at").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlstore: receive: %w", err)
	}

	model.QueueName = queueName
	return model.toRecord(), nil
}
