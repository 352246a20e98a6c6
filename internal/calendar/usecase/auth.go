package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"examprep-backend/internal/calendar"
)

// AuthCodeURL builds the provider authorization URL. The correlation token
// rides in the state parameter verbatim; offline access and forced consent
// ensure a refresh token is granted even on re-authorization.
func (uc *implUseCase) AuthCodeURL(ctx context.Context, state string) (string, error) {
	if uc.cfg.ClientID == "" || uc.cfg.RedirectURI == "" {
		uc.l.Warn(ctx, "authorization requested but oauth client is not configured")
		return "", calendar.ErrMissingConfig
	}

	return uc.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}
