// Package sqlstore provides a bun-based SQLite implementation of
// hq.Store.
//
// It persists two tables (hq_queues, hq_messages) and implements every
// lifecycle transition atomically: enqueue and sweep run inside
// BEGIN IMMEDIATE transactions to serialize
// writer-writer conflicts against SQLite's busy timeout, and receive
// is a single UPDATE ... WHERE id = (SELECT ... LIMIT 1) RETURNING *
// statement so that at most one concurrent receiver can lease any
// given row.
//
// # Schema
//
// Open (or InitDB, for a *bun.DB the caller already constructed)
// creates the hq_queues and hq_messages tables, their indices, and the
// updated_at triggers idempotently inside a single transaction. Schema
// evolution beyond additive IF NOT EXISTS objects must be handled
// externally.
//
// # Database Lifecycle
//
// Open configures busy_timeout, WAL journal mode, and foreign key
// enforcement. Callers that already manage a *bun.DB may call InitDB
// directly instead.
package sqlstore
