package gcalendar

// CreateEventRequest is the input for creating a Google Calendar event.
//
// StartDateTime/EndDateTime are local datetime strings built from the
// study-plan descriptor ("2026-05-01T09:00:00"). They are passed through
// verbatim: an inverted or malformed range is left for the API to reject.
type CreateEventRequest struct {
	CalendarID    string
	Summary       string
	Description   string
	StartDateTime string
	EndDateTime   string
	Timezone      string // e.g. "America/New_York"
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
}
