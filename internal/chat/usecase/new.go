package usecase

import (
	"time"

	"examprep-backend/internal/chat"
	"examprep-backend/pkg/chatapi"
	"examprep-backend/pkg/log"
)

const completionTimeout = 60 * time.Second

type implUseCase struct {
	l   log.Logger
	api chatapi.IChatAPI
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates the chat proxy use case over a completion client.
func New(l log.Logger, api chatapi.IChatAPI) *implUseCase {
	return &implUseCase{
		l:   l,
		api: api,
	}
}
