package models

import "time"

// CompletionEntry records that a task was done on a specific calendar day.
// The (TaskID, CompletionDate) pair is the ledger key; CompletedAt carries the
// exact instant so the completed-task visibility timeout can be computed
// precisely instead of being approximated with the current time.
type CompletionEntry struct {
	TaskID         string    `json:"task_id"`
	CompletionDate string    `json:"completion_date"` // YYYY-MM-DD
	CompletedAt    time.Time `json:"completed_at"`
}
