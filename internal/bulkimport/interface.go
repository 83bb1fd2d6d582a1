package bulkimport

import (
	"context"

	"agency-content-ops/internal/model"
)

// UseCase defines the business logic interface for the bulk import domain.
type UseCase interface {
	// Preview parses pasted text into tasks and spreads them across
	// consecutive days without persisting anything.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)

	// Confirm validates the import and forwards the confirmation payload to
	// the platform API, which owns final persistence.
	Confirm(ctx context.Context, sc model.Scope, input ConfirmInput) (ConfirmOutput, error)
}
