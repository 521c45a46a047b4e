package report

import (
	"lifetrack/internal/dates"
	"lifetrack/internal/domain"
)

// IsOverdue reports whether the task's due date has passed and the task is
// still open. Advisory only, relative to the given reference date.
func IsOverdue(task domain.Task, today dates.Date) bool {
	return task.DueDate.Before(today) && !task.Completed
}

// IsDueToday reports whether the task is due on the reference date.
func IsDueToday(task domain.Task, today dates.Date) bool {
	return task.DueDate == today
}
