package chat

import "errors"

var (
	// ErrEmptyTranscript is returned when the request carries no messages.
	ErrEmptyTranscript = errors.New("chat: transcript is empty")
	// ErrUpstream is returned when the completion service fails or returns
	// no usable choice.
	ErrUpstream = errors.New("chat: completion service unavailable")
)
