package usecase

import (
	"context"
	"errors"
	"time"

	"agency-content-ops/internal/model"
	"agency-content-ops/internal/recurring"
	"agency-content-ops/internal/recurring/repository"
)

// List returns the workspace's recurring templates with computed display
// fields.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input recurring.ListInput) (recurring.ListOutput, error) {
	templates, err := uc.repo.ListRecurring(ctx, repository.ListRecurringOptions{
		WorkspaceID: sc.WorkspaceID,
		ActiveOnly:  input.ActiveOnly,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recurring.List: workspace=%s: %v", sc.WorkspaceID, err)
		return recurring.ListOutput{}, err
	}

	now := time.Now()
	views := make([]recurring.TemplateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, newTemplateView(t, now))
	}

	return recurring.ListOutput{
		Templates: views,
		Count:     len(views),
	}, nil
}

// Detail returns a single recurring template by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (recurring.DetailOutput, error) {
	template, err := uc.repo.GetRecurring(ctx, sc.WorkspaceID, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecurringNotFound) {
			return recurring.DetailOutput{}, recurring.ErrNotFound
		}
		uc.l.Errorf(ctx, "recurring.Detail: id=%s: %v", id, err)
		return recurring.DetailOutput{}, err
	}

	return recurring.DetailOutput{Template: newTemplateView(template, time.Now())}, nil
}
