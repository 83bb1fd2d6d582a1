package http

import (
	"agency-content-ops/internal/bulkimport"
	pkgErrors "agency-content-ops/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case bulkimport.ErrEmptyInput:
		return pkgErrors.NewHTTPError(400, "input text is empty")
	case bulkimport.ErrNoTasksParsed:
		return pkgErrors.NewHTTPError(400, "no tasks parsed from input")
	case bulkimport.ErrInvalidRate:
		return pkgErrors.NewHTTPError(400, "tasks per day must be a positive integer")
	case bulkimport.ErrImportFailed:
		return pkgErrors.NewHTTPError(502, "failed to confirm import with platform")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
