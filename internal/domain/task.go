package domain

import (
	"time"

	"lifetrack/internal/dates"
)

// Task is a single todo entry. Completed and Text are the only mutable
// fields; the due date is fixed at creation.
type Task struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
	DueDate   dates.Date
}
