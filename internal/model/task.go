package model

// Task represents a concrete task stored by the platform API, either created
// by the generation worker from a recurring template or by a bulk import.
type Task struct {
	ID          string // platform internal ID
	WorkspaceID string
	ClientID    string
	Title       string
	ProjectTag  string // extracted from a leading [Tag] on import, may be empty
	DueDate     string // calendar day, "2006-01-02"
	Source      string // "recurring" or "bulk_import"
	TaskURL     string // deep link to the task in the platform web UI
	CreateTime  string // RFC3339 creation time string from the platform API
}
