package sqlstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/quayside-io/hq"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEnqueueUnknownQueue(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Enqueue(ctx, "missing", json.RawMessage(`{}`))
	require.ErrorIs(t, err, hq.ErrBadInput)
}

func TestReceiveEmptyQueueReturnsNil(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.CreateQueue(ctx, "orders", 3, 30)
	require.NoError(t, err)

	rec, err := store.Receive(ctx, "orders")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestEnqueueReceiveCompleteLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.CreateQueue(ctx, "orders", 3, 30)
	require.NoError(t, err)

	id, err := store.Enqueue(ctx, "orders", json.RawMessage(`{"sku":"abc"}`))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	rec, err := store.Receive(ctx, "orders")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, id, rec.ID)
	require.JSONEq(t, `{"sku":"abc"}`, string(rec.Args))
	require.Equal(t, uint32(1), rec.Attempts)
	require.NotNil(t, rec.LockedAt)

	// a second receive on the same queue must not redeliver the
	// already-leased message
	again, err := store.Receive(ctx, "orders")
	require.NoError(t, err)
	require.Nil(t, again)

	require.NoError(t, store.Complete(ctx, id))
	// completing twice is a no-op, not an error
	require.NoError(t, store.Complete(ctx, id))
}

func TestFailIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.CreateQueue(ctx, "orders", 3, 30)
	require.NoError(t, err)
	id, err := store.Enqueue(ctx, "orders", json.RawMessage(`{}`))
	require.NoError(t, err)

	rec, err := store.Receive(ctx, "orders")
	require.NoError(t, err)
	require.Equal(t, id, rec.ID)

	require.NoError(t, store.Fail(ctx, id))
	require.NoError(t, store.Fail(ctx, id))

	// attempts (1) is still below max_attempts (3), but Fail is
	// terminal, so a further receive finds nothing.
	next, err := store.Receive(ctx, "orders")
	require.NoError(t, err)
	require.Nil(t, next)
}

func TestFailOnNeverLeasedMessageIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Fail(ctx, uuid.New()))
	require.NoError(t, store.Complete(ctx, uuid.New()))
}

func TestSampleRecentOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.CreateQueue(ctx, "orders", 3, 30)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := store.Enqueue(ctx, "orders", json.RawMessage(`{}`))
		require.NoError(t, err)
	}

	recs, err := store.SampleRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "orders", recs[0].Queue)
	require.False(t, recs[0].UpdatedAt.Before(recs[1].UpdatedAt))
}
