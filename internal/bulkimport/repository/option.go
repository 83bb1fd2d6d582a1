package repository

import "time"

// ConfirmImportOptions holds the parameters forwarded to the platform's
// import-confirmation endpoint.
type ConfirmImportOptions struct {
	WorkspaceID    string
	RawText        string
	TasksPerDay    int
	ExcludeIndices []int
	StartDate      time.Time // calendar day
}
