package sqlstore

import (
	"context"
	"fmt"

	"github.com/quayside-io/hq"

	"github.com/uptrace/bun"
)

// SweepExpiredLeases reconciles leases that have outlived their
// queue's visibility timeout.
//
// A message whose lock has expired is eligible for one of two
// outcomes depending on its attempt count against its queue's
// max_attempts: messages with attempts <= max_attempts are unlocked
// back to ready; messages with attempts > max_attempts are retired to
// failed. Receive only leases messages with attempts below
// max_attempts, so a message unlocked at the ceiling stays ready
// without being delivered again. Both updates run inside
// one BEGIN IMMEDIATE transaction so the sweep observes a single
// consistent snapshot of elapsed lock age.
func (s *Store) SweepExpiredLeases(ctx context.Context) (hq.SweepResult, error) {
	conn, err := beginImmediate(ctx, s.db)
	if err != nil {
		return hq.SweepResult{}, fmt.Errorf("sqlstore: sweep: %w", err)
	}
	defer conn.rollback(ctx)

	unlockRes, err := conn.NewUpdate().
		Model((*messageModel)(nil)).
		Set("locked_at = NULL").
		Where("id IN (?)", expiredEligibleIDs(conn, "attempts <= hq_queues.max_attempts")).
		Exec(ctx)
	if err != nil {
		return hq.SweepResult{}, fmt.Errorf("sqlstore: sweep: unlock: %w", err)
	}

	retireRes, err := conn.NewUpdate().
		Model((*messageModel)(nil)).
		Set("failed_at = current_timestamp").
		Set("locked_at = NULL").
		Where("id IN (?)", expiredEligibleIDs(conn, "attempts > hq_queues.max_attempts")).
		Exec(ctx)
	if err != nil {
		return hq.SweepResult{}, fmt.Errorf("sqlstore: sweep: retire: %w", err)
	}

	if err := conn.commit(ctx); err != nil {
		return hq.SweepResult{}, fmt.Errorf("sqlstore: sweep: commit: %w", err)
	}

	return hq.SweepResult{
		Unlocked: getAffected(unlockRes),
		Retired:  getAffected(retireRes),
	}, nil
}

// expiredEligibleIDs builds the correlated subquery shared by both
// sweep phases: messages whose lock has outlived their queue's
// visibility timeout, further filtered by attemptPredicate to split
// the set into the unlock phase and the retire phase.
func expiredEligibleIDs(conn *immediateTx, attemptPredicate string) *bun.SelectQuery {
	return conn.NewSelect().
		Model((*messageModel)(nil)).
		ColumnExpr("hq_messages.id").
		Join("INNER JOIN hq_queues ON hq_queues.id = hq_messages.queue_id").
		Where("hq_messages.locked_at IS NOT NULL").
		Where("hq_messages.completed_at IS NULL").
		Where("hq_messages.failed_at IS NULL").
		Where("((julianday(current_timestamp) - julianday(hq_messages.locked_at)) * 86400.0) > cast(hq_queues.visibility_timeout_seconds as real)").
		Where(attemptPredicate)
}
