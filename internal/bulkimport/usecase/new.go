package usecase

import (
	"time"

	"agency-content-ops/internal/bulkimport/repository"
	pkgLog "agency-content-ops/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.PlatformRepository
	location *time.Location
}

// New creates a new bulk import UseCase instance. The timezone decides what
// "today" means when a preview has no explicit start date.
func New(l pkgLog.Logger, repo repository.PlatformRepository, timezone string) *implUseCase {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		location: loc,
	}
}
