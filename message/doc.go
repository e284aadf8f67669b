// Package message defines the transport-level envelope carried through
// the hq queue: an identifier paired with an opaque JSON payload.
//
// Message does not carry delivery or lifecycle state. Those concerns
// belong to package delivery, which augments a Message with queue
// ownership, attempt counts, and lease timestamps.
//
// A Message's Args are never interpreted by hq beyond checking that
// they are well-formed JSON at enqueue time; the payload schema is the
// caller's concern.
package message
