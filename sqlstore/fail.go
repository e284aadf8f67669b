package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Fail marks a leased message failed. See Complete for the
// idempotent-no-op rationale.
func (s *Store) Fail(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.NewUpdate().
		Model((*messageModel)(nil)).
		Set("failed_at = current_timestamp").
		Set("locked_at = NULL").
		Where("id = ?", id).
		Where("locked_at IS NOT NULL").
		Where("completed_at IS NULL").
		Where("failed_at IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("sqlstore: fail: %w", err)
	}
	return nil
}
