package models

import "time"

// MaxTitleLength is the upper bound on task titles, in characters.
const MaxTitleLength = 200

// Task is a to-do item. DueDate, when set, is a calendar day string
// in dates.Layout. CompletedAt is set exactly when Completed flips
// false to true and cleared on the way back.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *string    `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}
