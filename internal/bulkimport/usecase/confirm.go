package usecase

import (
	"context"

	"agency-content-ops/internal/bulkimport"
	"agency-content-ops/internal/bulkimport/repository"
	"agency-content-ops/internal/model"
)

// Confirm revalidates the import by recomputing the preview server-side,
// then forwards the confirmation payload to the platform API for final
// persistence.
func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, input bulkimport.ConfirmInput) (bulkimport.ConfirmOutput, error) {
	preview, start, err := uc.computePreview(bulkimport.PreviewInput{
		RawText:        input.RawText,
		TasksPerDay:    input.TasksPerDay,
		ExcludeIndices: input.ExcludeIndices,
		StartDate:      input.StartDate,
	})
	if err != nil {
		return bulkimport.ConfirmOutput{}, err
	}
	if preview.TaskCount == 0 {
		return bulkimport.ConfirmOutput{}, bulkimport.ErrNoTasksParsed
	}

	excludeIndices := input.ExcludeIndices
	if excludeIndices == nil {
		excludeIndices = []int{}
	}

	receipt, err := uc.repo.ConfirmImport(ctx, repository.ConfirmImportOptions{
		WorkspaceID:    sc.WorkspaceID,
		RawText:        input.RawText,
		TasksPerDay:    input.TasksPerDay,
		ExcludeIndices: excludeIndices,
		StartDate:      start,
	})
	if err != nil {
		uc.l.Errorf(ctx, "bulkimport.Confirm: workspace=%s: %v", sc.WorkspaceID, err)
		return bulkimport.ConfirmOutput{}, bulkimport.ErrImportFailed
	}

	uc.l.Infof(ctx, "bulkimport.Confirm: workspace=%s import=%s tasks=%d", sc.WorkspaceID, receipt.ImportID, receipt.TaskCount)

	return bulkimport.ConfirmOutput{
		ImportID:  receipt.ImportID,
		TaskCount: receipt.TaskCount,
	}, nil
}
