package calendar

import (
	"context"

	"examprep-backend/internal/model"
)

// UseCase is the study-plan-to-calendar handoff pipeline.
//
// CreatePending and HandleCallback are two halves of one logical operation
// joined only by the correlation token: the browser leaves the application
// between them to authenticate at the provider.
type UseCase interface {
	// CreatePending stores events and returns the correlation token that
	// doubles as the OAuth state parameter.
	CreatePending(ctx context.Context, events []model.EventDescriptor) (string, error)

	// AuthCodeURL builds the provider authorization URL carrying state
	// verbatim. Returns ErrMissingConfig when the OAuth client is not
	// configured.
	AuthCodeURL(ctx context.Context, state string) (string, error)

	// HandleCallback runs the post-redirect half: code exchange, plan
	// retrieval, per-item event creation. It never returns an error; every
	// failure is folded into the result's outcome.
	HandleCallback(ctx context.Context, input CallbackInput) CallbackResult
}
