package recurring

import (
	"time"

	"agency-content-ops/internal/model"
	"agency-content-ops/pkg/recurrence"
)

// TemplateView is a recurring template together with its computed display
// fields.
type TemplateView struct {
	Template    model.RecurringTask
	Description string
	NextRun     recurrence.NextRun
}

// ListInput filters the workspace's recurring templates.
type ListInput struct {
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ListOutput is the result of listing recurring templates.
type ListOutput struct {
	Templates []TemplateView
	Count     int
}

// DetailOutput is the result of fetching or updating a single template.
type DetailOutput struct {
	Template TemplateView
}

// UpdateInput carries a partial schedule update. Nil fields are unchanged.
type UpdateInput struct {
	ID         string
	IsActive   *bool
	Frequency  *string
	DayOfWeek  *int
	DayOfMonth *int
}

// PreviewInput is an unsaved schedule to describe.
type PreviewInput struct {
	Frequency        string
	DayOfWeek        *int
	DayOfMonth       *int
	IsActive         bool
	NextGenerationAt *time.Time
}

// PreviewOutput is the computed description and next run for a preview.
type PreviewOutput struct {
	Description string
	NextRun     recurrence.NextRun
}
