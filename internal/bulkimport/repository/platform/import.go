package platform

import (
	"context"

	"agency-content-ops/internal/bulkimport/repository"
	pkgLog "agency-content-ops/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new platform-backed import repository.
func New(client *Client, l pkgLog.Logger) repository.PlatformRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ConfirmImport(ctx context.Context, opt repository.ConfirmImportOptions) (repository.ImportReceipt, error) {
	resp, err := r.client.ConfirmImport(ctx, opt.WorkspaceID, confirmImportRequest{
		RawText:        opt.RawText,
		TasksPerDay:    opt.TasksPerDay,
		ExcludeIndices: opt.ExcludeIndices,
		StartDate:      opt.StartDate.Format("2006-01-02"),
	})
	if err != nil {
		r.l.Errorf(ctx, "platform repository: failed to confirm import: %v", err)
		return repository.ImportReceipt{}, err
	}

	return repository.ImportReceipt{
		ImportID:  resp.ImportID,
		TaskCount: resp.TaskCount,
	}, nil
}
