package repository

import (
	"context"
	"time"

	"agency-content-ops/internal/model"
)

// PlatformRepository is the interface for recurring-template data access
// against the platform API.
type PlatformRepository interface {
	ListRecurring(ctx context.Context, opt ListRecurringOptions) ([]model.RecurringTask, error)
	GetRecurring(ctx context.Context, workspaceID, id string) (model.RecurringTask, error)
	UpdateRecurring(ctx context.Context, workspaceID, id string, opt UpdateRecurringOptions) (model.RecurringTask, error)

	// ListDueRecurring returns active templates across all workspaces whose
	// next generation time is at or before the given instant. Used by the
	// generation worker.
	ListDueRecurring(ctx context.Context, before time.Time) ([]model.RecurringTask, error)

	// CreateGeneratedTask materializes one occurrence of a template as a
	// concrete task.
	CreateGeneratedTask(ctx context.Context, opt CreateGeneratedTaskOptions) (model.Task, error)

	// SetNextGeneration advances a template's stored next generation time.
	SetNextGeneration(ctx context.Context, workspaceID, id string, at time.Time) error
}
