package http

import (
	"agency-content-ops/internal/bulkimport"
	pkgLog "agency-content-ops/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc bulkimport.UseCase
}

// New creates a new HTTP handler for the bulk import domain.
func New(l pkgLog.Logger, uc bulkimport.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
