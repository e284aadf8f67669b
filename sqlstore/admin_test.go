package sqlstore_test

import (
	"context"
	"testing"

	"github.com/quayside-io/hq"
	"github.com/quayside-io/hq/queue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestQueueCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.GetQueue(ctx, "orders")
	require.NoError(t, err)
	require.Nil(t, got)

	created, err := store.CreateQueue(ctx, "orders", 3, 30)
	require.NoError(t, err)
	require.Equal(t, "orders", created.Name)
	require.Equal(t, 3, created.MaxAttempts)
	require.Equal(t, 30, created.VisibilityTimeoutSeconds)
	require.NotEqual(t, uuid.Nil, created.ID)

	_, err = store.CreateQueue(ctx, "orders", 1, 1)
	require.ErrorIs(t, err, hq.ErrConflict)

	queues, err := store.ListQueues(ctx)
	require.NoError(t, err)
	require.Len(t, queues, 1)

	maxAttempts := 7
	updated, err := store.UpdateQueue(ctx, "orders", queue.Patch{MaxAttempts: &maxAttempts})
	require.NoError(t, err)
	require.Equal(t, 7, updated.MaxAttempts)
	require.Equal(t, 30, updated.VisibilityTimeoutSeconds)

	require.NoError(t, store.DeleteQueue(ctx, "orders"))
	got, err = store.GetQueue(ctx, "orders")
	require.NoError(t, err)
	require.Nil(t, got)
}
