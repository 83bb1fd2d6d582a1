package usecase

import (
	"context"
	"time"

	"agency-content-ops/internal/model"
	"agency-content-ops/internal/recurring"
	"agency-content-ops/pkg/recurrence"
)

// Preview computes the cadence description and next occurrence for an
// unsaved schedule. It never fails: unrecognized frequencies degrade to the
// "Unknown" sentinel, matching what the editor shows while the user types.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input recurring.PreviewInput) (recurring.PreviewOutput, error) {
	spec := recurrence.Spec{
		Frequency:        input.Frequency,
		DayOfWeek:        input.DayOfWeek,
		DayOfMonth:       input.DayOfMonth,
		IsActive:         input.IsActive,
		NextGenerationAt: input.NextGenerationAt,
	}

	return recurring.PreviewOutput{
		Description: recurrence.Describe(input.Frequency, input.DayOfWeek, input.DayOfMonth),
		NextRun:     recurrence.Next(spec, time.Now()),
	}, nil
}
