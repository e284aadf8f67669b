// Package hq provides a durable, single-node message queue service
// modeled on the semantics of Amazon SQS.
//
// # Overview
//
// Producers enqueue opaque JSON payloads onto named queues. Consumers
// receive one message at a time, holding an exclusive lease bounded by
// the queue's visibility timeout, and either complete or fail it
// before the lease expires. A message whose lease expires becomes
// re-deliverable; a message that exceeds its queue's attempt budget is
// retired to a terminal failed state.
//
// # Delivery Semantics
//
// hq provides at-least-once delivery. A message may be delivered more
// than once if a consumer crashes before completing it, or if the
// visibility timeout expires before completion. Consumers must
// therefore be idempotent.
//
// # State Machine
//
// Messages follow this lifecycle (see package delivery for the
// authoritative State type):
//
//	ready    -> leased     (Receive)
//	leased   -> completed  (Complete)
//	leased   -> failed     (Fail, or sweep retirement)
//	leased   -> ready      (sweep, attempts <= max_attempts)
//
// Completed and failed are terminal.
//
// # Components
//
// Engine implements the lifecycle engine: Enqueue, Receive, Complete,
// Fail. Admin implements queue CRUD with validation. Sweeper runs the
// periodic visibility-timeout reconciliation. All three are thin
// policy layers over a Store, which package sqlstore implements on top
// of SQLite via bun.
//
// # Concurrency Model
//
// Engine and Admin hold no mutable state and take no process-wide
// lock; correctness instead rests on the Store's own transactional
// guarantees — in particular, Receive must be implemented as a single
// atomic UPDATE ... WHERE id = (SELECT ... LIMIT 1) so that at most one
// concurrent receiver can lease any given message.
package hq
