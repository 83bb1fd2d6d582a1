package bulkplan

import (
	"errors"
	"time"
)

// ErrInvalidRate is returned when tasksPerDay is zero or negative.
var ErrInvalidRate = errors.New("tasks per day must be a positive integer")

// Distribute assigns due dates by position: the first tasksPerDay tasks get
// the start date, the next tasksPerDay the day after, and so on. Every
// consecutive calendar day is used; weekends are not skipped. Positions are
// 0-based within the given (already filtered) slice, so excluded tasks leave
// no date gaps. The input slice is not modified.
func Distribute(tasks []Task, tasksPerDay int, start time.Time) ([]Task, error) {
	if tasksPerDay <= 0 {
		return nil, ErrInvalidRate
	}

	day := StartOfDay(start)

	out := make([]Task, len(tasks))
	for i, t := range tasks {
		t.DueDate = day.AddDate(0, 0, i/tasksPerDay)
		out[i] = t
	}
	return out, nil
}

// StartOfDay truncates t to midnight in its own location, the calendar-day
// granularity due dates are expressed in.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
