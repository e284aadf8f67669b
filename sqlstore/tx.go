package sqlstore

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// immediateTx wraps a dedicated *sql.Conn already inside a BEGIN
// IMMEDIATE transaction. database/sql's own Tx type has no notion of
// IMMEDIATE, so the transaction is driven with raw BEGIN/COMMIT/
// ROLLBACK statements over a connection bun keeps alive for its
// duration, the same trick the original repository's sqlx-based
// client uses.
type immediateTx struct {
	bun.IDB
	conn bun.Conn
	done bool
}

func beginImmediate(ctx context.Context, db *bun.DB) (*immediateTx, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("begin immediate: %w", err)
	}
	return &immediateTx{IDB: conn, conn: conn}, nil
}

func (t *immediateTx) commit(ctx context.Context) error {
	t.done = true
	defer t.conn.Close()
	_, err := t.conn.ExecContext(ctx, "COMMIT")
	return err
}

// rollback is a no-op once commit has succeeded; it exists so callers
// can unconditionally defer it the way they would defer (*sql.Tx).Rollback.
func (t *immediateTx) rollback(ctx context.Context) {
	if t.done {
		return
	}
	t.done = true
	defer t.conn.Close()
	_, _ = t.conn.ExecContext(ctx, "ROLLBACK")
}
