package sqlstore

import (
	"encoding/json"
	"time"

	"github.com/quayside-io/hq/delivery"
	"github.com/quayside-io/hq/message"
	"github.com/quayside-io/hq/queue"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type queueModel struct {
	bun.BaseModel `bun:"table:hq_queues"`

	ID                       uuid.UUID `bun:"id,pk,type:uuid"`
	Name                     string    `bun:"name,unique,notnull"`
	MaxAttempts              int       `bun:"max_attempts,notnull"`
	VisibilityTimeoutSeconds int       `bun:"visibility_timeout_seconds,notnull"`

	InsertedAt time.Time `bun:"inserted_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func (qm *queueModel) toQueue() *queue.Queue {
	return &queue.Queue{
		ID:                       qm.ID,
		Name:                     qm.Name,
		MaxAttempts:              qm.MaxAttempts,
		VisibilityTimeoutSeconds: qm.VisibilityTimeoutSeconds,
		InsertedAt:               qm.InsertedAt,
		UpdatedAt:                qm.UpdatedAt,
	}
}

// messageModel is in exactly one of four lifecycle states, derived
// from the three nullable timestamp columns below, never from a
// persisted status enum.
type messageModel struct {
	bun.BaseModel `bun:"table:hq_messages"`

	ID      uuid.UUID `bun:"id,pk,type:uuid"`
	QueueID uuid.UUID `bun:"queue_id,notnull"`
	Args    string    `bun:"args,type:text,notnull"`

	Attempts uint32 `bun:"attempts,notnull,default:0"`

	InsertedAt time.Time `bun:"inserted_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	LockedAt    *time.Time `bun:"locked_at,nullzero,default:null"`
	CompletedAt *time.Time `bun:"completed_at,nullzero,default:null"`
	FailedAt    *time.Time `bun:"failed_at,nullzero,default:null"`

	// QueueName is not a persisted column: SampleRecent selects it from
	// a join with hq_queues, and Receive sets it from its queueName
	// argument after the update.
	QueueName string `bun:"queue_name,scanonly"`
}

func (mm *messageModel) toRecord() *delivery.Record {
	return &delivery.Record{
		Message: message.Message{
			ID:   mm.ID,
			Args: json.RawMessage(mm.Args),
		},
		QueueID:     mm.QueueID,
		Queue:       mm.QueueName,
		Attempts:    mm.Attempts,
		InsertedAt:  mm.InsertedAt,
		UpdatedAt:   mm.UpdatedAt,
		LockedAt:    mm.LockedAt,
		CompletedAt: mm.CompletedAt,
		FailedAt:    mm.FailedAt,
	}
}

// newMessageModel leaves InsertedAt and UpdatedAt at their zero value
// so bun's nullzero tag omits them from the INSERT and the schema's
// current_timestamp column default applies instead.
func newMessageModel(queueID uuid.UUID, body []byte) *messageModel {
	return &messageModel{
		ID:      uuid.New(),
		QueueID: queueID,
		Args:    string(body),
	}
}
