package http

import (
	"agency-content-ops/internal/recurring"
	pkgLog "agency-content-ops/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc recurring.UseCase
}

// New creates a new HTTP handler for the recurring domain.
func New(l pkgLog.Logger, uc recurring.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
