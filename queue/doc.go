// Package queue defines the queue definition type managed by hq's
// admin operations: a name, an attempt budget, and a visibility
// timeout.
//
// Queue values are snapshots returned by a Store; mutating them has no
// effect on storage. Changes happen through CreateQueue/UpdateQueue/
// DeleteQueue.
package queue
