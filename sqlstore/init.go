package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"
)

// Open connects to the SQLite database named by path and configures
// it: WAL journal mode, a five second busy timeout, and foreign key
// enforcement. An empty path opens a private in-memory database.
//
// Pragmas are passed as DSN query parameters rather than issued with
// ExecContext after connecting: *sql.DB pools multiple underlying
// connections, and an ExecContext only configures whichever connection
// the pool happens to hand it, not every connection the pool may later
// open. modernc.org/sqlite applies _pragma parameters to each new
// connection as it is established, so every connection in the pool
// gets the same configuration. Because SQLite allows only one writer
// at a time regardless of journal mode, the pool is additionally
// capped at a single open connection.
func Open(ctx context.Context, path string) (*bun.DB, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)
	db := bun.NewDB(sqlDB, sqlitedialect.New())

	if err := InitDB(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitDB creates the hq_queues and hq_messages tables, their indices,
// and their updated_at triggers. It is idempotent and safe to call
// against an already-initialized database.
//
// The caller is responsible for providing a properly configured
// *bun.DB; Open does this automatically.
func InitDB(ctx context.Context, db *bun.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := createQueuesTable(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := createMessagesTable(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := createIndices(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := createTriggers(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

func createQueuesTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*queueModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func createMessagesTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*messageModel)(nil)).
		IfNotExists().
		ForeignKey(`("queue_id") REFERENCES "hq_queues" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	return err
}

func createIndices(ctx context.Context, db bun.IDB) error {
	stmts := []struct {
		model  interface{}
		name   string
		column string
	}{
		{(*messageModel)(nil), "idx_hq_messages_queue_id", "queue_id"},
		{(*messageModel)(nil), "idx_hq_messages_inserted_at", "inserted_at"},
		{(*messageModel)(nil), "idx_hq_messages_locked_at", "locked_at"},
		{(*messageModel)(nil), "idx_hq_messages_completed_at", "completed_at"},
		{(*messageModel)(nil), "idx_hq_messages_failed_at", "failed_at"},
	}
	for _, s := range stmts {
		if _, err := db.NewCreateIndex().
			Model(s.model).
			Index(s.name).
			Column(s.column).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
	}
	_, err := db.NewCreateIndex().
		Model((*queueModel)(nil)).
		Index("idx_hq_queues_name").
		Column("name").
		Unique().
		IfNotExists().
		Exec(ctx)
	return err
}

// createTriggers installs the updated_at-on-write triggers every row
// needs. bun has no trigger builder, so these are issued as raw SQL,
// the same escape hatch used above for ForeignKey.
func createTriggers(ctx context.Context, db bun.IDB) error {
	const queuesTrigger = `
	create trigger if not exists hq_queues_updated_at after update on hq_queues
	begin
		update hq_queues set updated_at = current_timestamp where id = old.id;
	end;`
	const messagesTrigger = `
	create trigger if not exists hq_messages_updated_at after update on hq_messages
	begin
		update hq_messages set updated_at = current_timestamp where id = old.id;
	end;`
	if _, err := db.ExecContext(ctx, queuesTrigger); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, messagesTrigger)
	return err
}
