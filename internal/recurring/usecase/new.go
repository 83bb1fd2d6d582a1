package usecase

import (
	"agency-content-ops/internal/recurring/repository"
	pkgLog "agency-content-ops/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.PlatformRepository
}

// New creates a new recurring UseCase instance.
func New(l pkgLog.Logger, repo repository.PlatformRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
