// Package delivery defines the stateful representation of a message as
// it moves through the hq lifecycle.
//
// A Record embeds message.Message and adds the fields a queue must
// track to implement lease-based delivery: which queue owns it, how
// many times it has been received, and the three nullable timestamps
// that together determine its lifecycle state (State).
//
// Unlike a persisted status column, State is always derived from
// LockedAt, CompletedAt, and FailedAt. This mirrors the schema the
// original hq service uses: a message's state is a read, never a
// write.
//
// Record values returned by a Store are snapshots. Mutating them does
// not affect the underlying storage; transitions happen only through
// Store methods.
package delivery
