package videosearch

import "context"

// ISearcher defines the interface for the hosted video-search API.
// Implementations are safe for concurrent use.
type ISearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Video, error)
}
