package message

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Message is the opaque payload a producer enqueues onto a queue.
//
// Args is the raw JSON document supplied at enqueue time. hq validates
// that it is well-formed JSON but never interprets its contents.
type Message struct {
	ID   uuid.UUID
	Args json.RawMessage
}

// New creates a Message with a freshly generated identifier.
func New(args json.RawMessage) *Message {
	return &Message{
		ID:   uuid.New(),
		Args: args,
	}
}
