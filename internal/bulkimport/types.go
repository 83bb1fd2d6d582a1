package bulkimport

import "time"

// PreviewInput is the input for an import preview.
type PreviewInput struct {
	RawText        string
	TasksPerDay    int
	ExcludeIndices []int
	StartDate      *time.Time // defaults to today when nil
}

// TaskPreview is one row of the preview: a parsed task with its assigned
// due date. OriginalIndex survives exclusion and identifies the row for
// subsequent exclude requests.
type TaskPreview struct {
	Title         string
	ProjectTag    string
	OriginalIndex int
	DueDate       time.Time
}

// PreviewOutput is the result of an import preview.
type PreviewOutput struct {
	Tasks     []TaskPreview
	TaskCount int
	DayCount  int // number of distinct calendar days used
	StartDate time.Time
	EndDate   time.Time
}

// ConfirmInput is the input for confirming an import. The same fields the
// user previewed are forwarded to the platform API.
type ConfirmInput struct {
	RawText        string
	TasksPerDay    int
	ExcludeIndices []int
	StartDate      *time.Time
}

// ConfirmOutput is the platform's receipt for a confirmed import.
type ConfirmOutput struct {
	ImportID  string
	TaskCount int
}
