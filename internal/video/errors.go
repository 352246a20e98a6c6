package video

import "errors"

var (
	// ErrEmptyQuery is returned when the search query is blank.
	ErrEmptyQuery = errors.New("video: query is empty")
	// ErrUpstream is returned when the video-search service fails.
	ErrUpstream = errors.New("video: search service unavailable")
)
