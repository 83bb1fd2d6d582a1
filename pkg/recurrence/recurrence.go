// Package recurrence computes cadence descriptions and next occurrence
// times for recurring task templates. All functions are pure.
package recurrence

import (
	"fmt"
	"time"
)

// Recognized frequency values, as stored by the platform API.
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// Spec is a recurring task's schedule configuration. DayOfWeek (0 = Sunday)
// applies to weekly/biweekly templates, DayOfMonth (1-31) to monthly ones;
// whichever field is irrelevant for the frequency is ignored, not rejected.
type Spec struct {
	Frequency        string
	DayOfWeek        *int
	DayOfMonth       *int
	IsActive         bool
	NextGenerationAt *time.Time
}

// Status classifies the outcome of a next-occurrence computation.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPaused    Status = "paused"
	StatusUnknown   Status = "unknown"
)

// NextRun is the result of Next. At is only meaningful when Status is
// StatusScheduled.
type NextRun struct {
	Status Status
	At     time.Time
}

// String renders the next run for display: the date for a scheduled run,
// or the "Paused"/"Unknown" sentinel otherwise.
func (n NextRun) String() string {
	switch n.Status {
	case StatusScheduled:
		return n.At.Format("2006-01-02")
	case StatusPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Describe renders a schedule as a human sentence, e.g. "Every Monday" or
// "Monthly on the 3rd". An unrecognized frequency yields "Unknown".
func Describe(frequency string, dayOfWeek, dayOfMonth *int) string {
	switch frequency {
	case FrequencyDaily:
		return "Every day"
	case FrequencyWeekly:
		if dayOfWeek != nil {
			return fmt.Sprintf("Every %s", time.Weekday(*dayOfWeek).String())
		}
		return "Every week"
	case FrequencyBiweekly:
		if dayOfWeek != nil {
			return fmt.Sprintf("Every 2 weeks on %s", time.Weekday(*dayOfWeek).String())
		}
		return "Every 2 weeks"
	case FrequencyMonthly:
		if dayOfMonth != nil {
			return fmt.Sprintf("Monthly on the %d%s", *dayOfMonth, ordinalSuffix(*dayOfMonth))
		}
		return "Monthly"
	default:
		return "Unknown"
	}
}

// Next computes the next occurrence of a spec relative to now.
//
// Precedence: a paused template never schedules; a stored NextGenerationAt is
// authoritative and returned verbatim; only then is a time derived from the
// frequency. Derivation anchors strictly off now and does not seek the next
// calendar date matching DayOfWeek/DayOfMonth; the platform's generation
// loop owns that refinement once NextGenerationAt is set.
func Next(spec Spec, now time.Time) NextRun {
	if !spec.IsActive {
		return NextRun{Status: StatusPaused}
	}

	if spec.NextGenerationAt != nil {
		return NextRun{Status: StatusScheduled, At: *spec.NextGenerationAt}
	}

	switch spec.Frequency {
	case FrequencyDaily:
		return NextRun{Status: StatusScheduled, At: now.AddDate(0, 0, 1)}
	case FrequencyWeekly:
		return NextRun{Status: StatusScheduled, At: now.AddDate(0, 0, 7)}
	case FrequencyBiweekly:
		return NextRun{Status: StatusScheduled, At: now.AddDate(0, 0, 14)}
	case FrequencyMonthly:
		return NextRun{Status: StatusScheduled, At: addMonthClamped(now)}
	default:
		return NextRun{Status: StatusUnknown}
	}
}

// addMonthClamped advances t by one calendar month, clamping to the last
// valid day when the target month is shorter (Jan 31 -> Feb 28/29). Plain
// AddDate would normalize the overflow into the month after.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(firstOfNext.Year(), firstOfNext.Month()); day > last {
		day = last
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ordinalSuffix returns the English ordinal suffix for a day of month.
// Only the exact values that occur in a 1-31 range are special-cased; the
// teens fall through to "th" on their own.
func ordinalSuffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}
