package http

import (
	"github.com/gin-gonic/gin"

	"examprep-backend/internal/calendar"
	"examprep-backend/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	CreatePending(c *gin.Context)
	Authorize(c *gin.Context)
	Callback(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         calendar.UseCase
	appBaseURL string
}

// New creates a new HTTP handler for the calendar handoff domain.
// appBaseURL is the user-facing application both OAuth endpoints redirect
// back into.
func New(l log.Logger, uc calendar.UseCase, appBaseURL string) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		appBaseURL: appBaseURL,
	}
}
