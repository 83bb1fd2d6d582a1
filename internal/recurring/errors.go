package recurring

import "errors"

// Domain-specific errors for the recurring package.
var (
	ErrNotFound          = errors.New("recurring task not found")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrInvalidDayOfWeek  = errors.New("day of week must be between 0 and 6")
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")
)
