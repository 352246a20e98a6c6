package continuity

import "fmt"

// bannerFor maps the callback outcome parameters onto the transient banner.
// Returns nil when no calendar result is present, so a plain page load shows
// nothing.
func bannerFor(outcome string, count int, reason string) *Banner {
	switch outcome {
	case "success":
		noun := "sessions"
		if count == 1 {
			noun = "session"
		}
		return &Banner{
			Outcome: outcome,
			Message: fmt.Sprintf("Added %d study %s to your Google Calendar.", count, noun),
		}
	case "no_events":
		return &Banner{
			Outcome: outcome,
			Message: "Your study plan expired before it reached the calendar. Please confirm it again from the chat.",
		}
	case "denied":
		msg := "Calendar access was declined."
		if reason != "" {
			msg = "Calendar access was declined: " + reason
		}
		return &Banner{Outcome: outcome, Message: msg}
	case "error":
		return &Banner{
			Outcome: outcome,
			Message: "Something went wrong while adding your plan to the calendar. Please try again.",
		}
	default:
		return nil
	}
}
