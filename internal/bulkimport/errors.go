package bulkimport

import "errors"

// Domain-specific errors for the bulkimport package.
var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrNoTasksParsed = errors.New("no tasks parsed from input")
	ErrInvalidRate   = errors.New("tasks per day must be a positive integer")
	ErrImportFailed  = errors.New("failed to confirm import")
)
