package video

import "context"

// UseCase is the video-assist search proxy.
type UseCase interface {
	// Search forwards the query to the hosted video-search API and returns
	// normalized results.
	Search(ctx context.Context, query string) ([]Video, error)
}
