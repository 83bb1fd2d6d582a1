package model

import "time"

// Frequency is the cadence of a recurring task template.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// RecurringTask is a recurring task template stored by the platform API.
// DayOfWeek (0 = Sunday) is set for weekly/biweekly templates, DayOfMonth
// (1-31) for monthly ones; the other field is null. NextGenerationAt, once
// set by the platform's generation loop, is the authoritative next run time.
type RecurringTask struct {
	ID               string
	WorkspaceID      string
	ClientID         string // agency client the generated tasks belong to
	Title            string
	Frequency        Frequency
	DayOfWeek        *int
	DayOfMonth       *int
	IsActive         bool
	NextGenerationAt *time.Time
	CreateTime       string // RFC3339 string from the platform API
	UpdateTime       string // RFC3339 string from the platform API
}
