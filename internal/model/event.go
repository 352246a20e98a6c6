package model

import "time"

// EventDescriptor is one proposed calendar entry extracted from a study plan.
//
// StartTime/EndTime are local times of day in 24h "HH:MM" form and Date is an
// ISO calendar date ("2006-01-02"). startTime < endTime is expected but not
// enforced here: an inverted range is passed through to the remote provider,
// which may reject it as a per-item failure.
type EventDescriptor struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject,omitempty"`
}

// PendingPlan is a stored, not-yet-consumed study plan awaiting the OAuth
// callback. It is keyed by an opaque correlation token and consumed at most once.
type PendingPlan struct {
	Token     string
	Events    []EventDescriptor
	CreatedAt time.Time
}
