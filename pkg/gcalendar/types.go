package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// Generated occurrences are calendar-day items, so events are all-day:
// only the Date matters, EndDate defaults to the following day.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time
	Timezone    string // e.g. "Europe/London"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Date        time.Time
}
