package usecase

import (
	"context"
	"strings"
	"time"

	"agency-content-ops/internal/bulkimport"
	"agency-content-ops/internal/model"
	"agency-content-ops/pkg/bulkplan"
)

// Preview parses raw text, applies exclusions and spreads the remaining
// tasks across consecutive days. Nothing is persisted.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input bulkimport.PreviewInput) (bulkimport.PreviewOutput, error) {
	output, _, err := uc.computePreview(input)
	if err != nil {
		return bulkimport.PreviewOutput{}, err
	}

	uc.l.Infof(ctx, "bulkimport.Preview: workspace=%s tasks=%d days=%d", sc.WorkspaceID, output.TaskCount, output.DayCount)
	return output, nil
}

// computePreview is the shared parse/exclude/distribute pipeline behind both
// Preview and Confirm.
func (uc *implUseCase) computePreview(input bulkimport.PreviewInput) (bulkimport.PreviewOutput, time.Time, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return bulkimport.PreviewOutput{}, time.Time{}, bulkimport.ErrEmptyInput
	}
	if input.TasksPerDay <= 0 {
		return bulkimport.PreviewOutput{}, time.Time{}, bulkimport.ErrInvalidRate
	}

	tasks := bulkplan.Parse(input.RawText)
	if len(tasks) == 0 {
		return bulkimport.PreviewOutput{}, time.Time{}, bulkimport.ErrNoTasksParsed
	}

	for _, index := range input.ExcludeIndices {
		tasks = bulkplan.Exclude(tasks, index)
	}

	start := time.Now().In(uc.location)
	if input.StartDate != nil {
		start = *input.StartDate
	}
	start = bulkplan.StartOfDay(start)

	distributed, err := bulkplan.Distribute(tasks, input.TasksPerDay, start)
	if err != nil {
		return bulkimport.PreviewOutput{}, time.Time{}, bulkimport.ErrInvalidRate
	}

	previews := make([]bulkimport.TaskPreview, 0, len(distributed))
	for _, t := range distributed {
		previews = append(previews, bulkimport.TaskPreview{
			Title:         t.Title,
			ProjectTag:    t.ProjectTag,
			OriginalIndex: t.OriginalIndex,
			DueDate:       t.DueDate,
		})
	}

	output := bulkimport.PreviewOutput{
		Tasks:     previews,
		TaskCount: len(previews),
		StartDate: start,
	}
	if len(previews) > 0 {
		output.EndDate = previews[len(previews)-1].DueDate
		output.DayCount = (len(previews)-1)/input.TasksPerDay + 1
	}

	return output, start, nil
}
