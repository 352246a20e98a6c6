package usecase

import (
	"examprep-backend/internal/video"
	"examprep-backend/pkg/log"
	"examprep-backend/pkg/videosearch"
)

// defaultMaxResults bounds how many videos are surfaced per query.
const defaultMaxResults = 5

type implUseCase struct {
	l        log.Logger
	searcher videosearch.ISearcher
}

var _ video.UseCase = (*implUseCase)(nil)

// New creates the video search use case over a search client.
func New(l log.Logger, searcher videosearch.ISearcher) *implUseCase {
	return &implUseCase{
		l:        l,
		searcher: searcher,
	}
}
