package usecase

import (
	"context"
	"fmt"
	"strings"

	"examprep-backend/internal/video"
)

func (uc *implUseCase) Search(ctx context.Context, query string) ([]video.Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, video.ErrEmptyQuery
	}

	results, err := uc.searcher.Search(ctx, query, defaultMaxResults)
	if err != nil {
		uc.l.Errorf(ctx, "video search failed for %q: %v", query, err)
		return nil, fmt.Errorf("%w: %v", video.ErrUpstream, err)
	}

	videos := make([]video.Video, 0, len(results))
	for _, v := range results {
		videos = append(videos, video.Video{
			ID:        v.ID,
			Title:     v.Title,
			Channel:   v.Channel,
			Thumbnail: v.Thumbnail,
			URL:       v.URL,
		})
	}
	return videos, nil
}
