package models

import "time"

// MaxContentLength is the upper bound on journal entries, in characters.
const MaxContentLength = 10000

type JournalEntry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
