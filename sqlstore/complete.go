package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Complete marks a leased message done.
//
// A message that is already completed, already failed, or was never
// leased is not an error: complete/fail are idempotent no-ops, so a
// client that retries a completion call after a dropped response never
// sees a spurious failure.
func (s *Store) Complete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.NewUpdate().
		Model((*messageModel)(nil)).
		Set("completed_at = current_timestamp").
		Set("locked_at = NULL").
		Where("id = ?", id).
		Where("locked_at IS NOT NULL").
		Where("completed_at IS NULL").
		Where("failed_at IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("sqlstore: complete: %w", err)
	}
	return nil
}
