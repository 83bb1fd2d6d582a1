package http

import (
	"agency-content-ops/internal/recurring"
	pkgErrors "agency-content-ops/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unmapped errors surface as 500 without leaking internals.
func (h *handler) mapError(err error) error {
	switch err {
	case recurring.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "recurring task not found")
	case recurring.ErrInvalidFrequency:
		return pkgErrors.NewHTTPError(400, "invalid frequency")
	case recurring.ErrInvalidDayOfWeek:
		return pkgErrors.NewHTTPError(400, "day of week must be between 0 and 6")
	case recurring.ErrInvalidDayOfMonth:
		return pkgErrors.NewHTTPError(400, "day of month must be between 1 and 31")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
