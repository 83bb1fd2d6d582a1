package repository

import "errors"

// ErrRecurringNotFound is returned when the platform API has no recurring
// template with the requested ID in the workspace.
var ErrRecurringNotFound = errors.New("recurring template not found")
