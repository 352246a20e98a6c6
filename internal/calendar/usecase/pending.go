package usecase

import (
	"context"

	"examprep-backend/internal/calendar"
	"examprep-backend/internal/model"
)

// CreatePending stores the confirmed plan and returns its correlation token.
func (uc *implUseCase) CreatePending(ctx context.Context, events []model.EventDescriptor) (string, error) {
	if len(events) == 0 {
		return "", calendar.ErrInvalidEvents
	}
	for _, ev := range events {
		if ev.Title == "" || ev.Date == "" || ev.StartTime == "" || ev.EndTime == "" {
			return "", calendar.ErrInvalidEvents
		}
	}

	token, err := uc.store.Put(events)
	if err != nil {
		return "", calendar.ErrInvalidEvents
	}

	uc.l.Infof(ctx, "pending plan stored: %d events, token %s", len(events), token)
	return token, nil
}
