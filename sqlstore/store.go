package sqlstore

import (
	"github.com/uptrace/bun"
)

// Store is a bun-backed implementation of hq.Store over SQLite.
type Store struct {
	db *bun.DB
}

// New wraps an already-initialized *bun.DB. Most callers obtain db
// from Open, which also configures pragmas and runs InitDB.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}
