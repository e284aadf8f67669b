package sqlstore

import (
	"context"
	"fmt"

	"github.com/quayside-io/hq/delivery"
)

// SampleRecent returns up to limit of the most recently touched
// messages across all queues, newest first, for the dashboard.
//
// The multi-key ORDER BY mirrors the original dashboard query: ties on
// updated_at (which every row has) are broken by inserted_at, then
// locked_at, completed_at, and failed_at, all descending. SQLite sorts
// NULLs last in descending order, so at each of those keys a row with
// the timestamp set sorts ahead of one without it.
func (s *Store) SampleRecent(ctx context.Context, limit int) ([]*delivery.Record, error) {
	var models []*messageModel
	err := s.db.NewSelect().
		Model(&models).
		ColumnExpr("hq_messages.*").
		ColumnExpr("hq_queues.name AS queue_name").
		Join("INNER JOIN hq_queues ON hq_queues.id = hq_messages.queue_id").
		OrderExpr("hq_messages.updated_at DESC").
		OrderExpr("hq_messages.inserted_at DESC").
		OrderExpr("hq_messages.locked_at DESC").
		OrderExpr("hq_messages.completed_at DESC").
		OrderExpr("hq_messages.failed_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: sample: %w", err)
	}

	records := make([]*delivery.Record, len(models))
	for i, m := range models {
		records[i] = m.toRecord()
	}
	return records, nil
}
