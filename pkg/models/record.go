package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is one persisted entry in a collection file. Records are append-only:
// once written they are never mutated or deleted.
type Record struct {
	ID        string    `json:"id"`
	SenderID  *int64    `json:"senderId"`
	Username  *string   `json:"username"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecord stamps identity and creation time; callers fill sender fields.
func NewRecord(body string, now time.Time) Record {
	return Record{
		ID:        uuid.New().String(),
		Body:      body,
		CreatedAt: now,
	}
}
