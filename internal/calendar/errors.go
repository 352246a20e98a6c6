package calendar

import "errors"

var (
	// ErrInvalidEvents means the plan-creation request carried no usable
	// events.
	ErrInvalidEvents = errors.New("calendar: at least one valid event is required")

	// ErrMissingConfig means OAuth client credentials are not configured.
	ErrMissingConfig = errors.New("calendar: oauth client is not configured")
)
