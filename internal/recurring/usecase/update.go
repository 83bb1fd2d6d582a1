package usecase

import (
	"context"
	"errors"
	"time"

	"agency-content-ops/internal/model"
	"agency-content-ops/internal/recurring"
	"agency-content-ops/internal/recurring/repository"
)

// Update applies schedule changes to a template. Validation rejects bad
// values here; the preview path deliberately degrades instead (an unsaved
// schedule with a bad frequency shows as "Unknown", it is not an error).
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input recurring.UpdateInput) (recurring.DetailOutput, error) {
	if input.Frequency != nil && !validFrequency(*input.Frequency) {
		return recurring.DetailOutput{}, recurring.ErrInvalidFrequency
	}
	if input.DayOfWeek != nil && (*input.DayOfWeek < 0 || *input.DayOfWeek > 6) {
		return recurring.DetailOutput{}, recurring.ErrInvalidDayOfWeek
	}
	if input.DayOfMonth != nil && (*input.DayOfMonth < 1 || *input.DayOfMonth > 31) {
		return recurring.DetailOutput{}, recurring.ErrInvalidDayOfMonth
	}

	updated, err := uc.repo.UpdateRecurring(ctx, sc.WorkspaceID, input.ID, repository.UpdateRecurringOptions{
		IsActive:   input.IsActive,
		Frequency:  input.Frequency,
		DayOfWeek:  input.DayOfWeek,
		DayOfMonth: input.DayOfMonth,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRecurringNotFound) {
			return recurring.DetailOutput{}, recurring.ErrNotFound
		}
		uc.l.Errorf(ctx, "recurring.Update: id=%s: %v", input.ID, err)
		return recurring.DetailOutput{}, err
	}

	uc.l.Infof(ctx, "recurring.Update: workspace=%s id=%s active=%v", sc.WorkspaceID, input.ID, updated.IsActive)

	return recurring.DetailOutput{Template: newTemplateView(updated, time.Now())}, nil
}
