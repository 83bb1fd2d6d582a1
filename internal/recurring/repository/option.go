package repository

import "time"

// ListRecurringOptions holds the parameters for listing recurring templates.
type ListRecurringOptions struct {
	WorkspaceID string
	ActiveOnly  bool
	Limit       int // max number of results (default 20)
	Offset      int // pagination offset
}

// UpdateRecurringOptions holds a partial template update. Nil fields are
// left unchanged by the platform API.
type UpdateRecurringOptions struct {
	IsActive         *bool
	Frequency        *string
	DayOfWeek        *int
	DayOfMonth       *int
	NextGenerationAt *time.Time
}

// CreateGeneratedTaskOptions holds the parameters for materializing one
// occurrence of a recurring template.
type CreateGeneratedTaskOptions struct {
	RecurringTaskID string
	WorkspaceID     string
	ClientID        string
	Title           string
	DueDate         time.Time // calendar day
	IdempotencyKey  string    // guards against double generation on retries
}
