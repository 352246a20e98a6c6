package usecase

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"

	"examprep-backend/internal/pending"
	"examprep-backend/pkg/gcalendar"
	"examprep-backend/pkg/log"
)

const (
	exchangeTimeout = 10 * time.Second
	perEventTimeout = 10 * time.Second
)

// Exchanger swaps an authorization code for an access token.
type Exchanger interface {
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// EventCreator issues one remote event-creation call.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CreatorFactory builds an EventCreator bound to an exchanged token.
type CreatorFactory func(ctx context.Context, tok *oauth2.Token) (EventCreator, error)

// Config holds the OAuth client credentials and event defaults.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CalendarID   string
	Timezone     string
}

type implUseCase struct {
	l          log.Logger
	cfg        Config
	store      *pending.Store
	oauth      *oauth2.Config
	exchanger  Exchanger
	newCreator CreatorFactory
}

type oauthExchanger struct {
	cfg *oauth2.Config
}

func (e oauthExchanger) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return e.cfg.Exchange(ctx, code)
}

// New creates the handoff use case. exchanger and newCreator may be nil, in
// which case the real Google implementations are used; tests inject fakes.
func New(l log.Logger, cfg Config, store *pending.Store, exchanger Exchanger, newCreator CreatorFactory) *implUseCase {
	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       []string{gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	if exchanger == nil {
		exchanger = oauthExchanger{cfg: oc}
	}
	if newCreator == nil {
		newCreator = func(ctx context.Context, tok *oauth2.Token) (EventCreator, error) {
			return gcalendar.NewClientFromToken(ctx, oc, tok)
		}
	}

	return &implUseCase{
		l:          l,
		cfg:        cfg,
		store:      store,
		oauth:      oc,
		exchanger:  exchanger,
		newCreator: newCreator,
	}
}
