package recurring

import (
	"context"

	"agency-content-ops/internal/model"
)

// UseCase defines the business logic interface for the recurring-task domain.
type UseCase interface {
	// List returns the workspace's recurring templates with computed cadence
	// descriptions and next run times.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns a single recurring template by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// Update applies schedule changes (pause/resume, frequency, target day)
	// and returns the updated template.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (DetailOutput, error)

	// Preview computes the cadence description and next occurrence for a
	// schedule that has not been saved yet.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)
}
