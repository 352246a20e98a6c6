package http

import (
	"github.com/gin-gonic/gin"

	"examprep-backend/internal/video"
	"examprep-backend/pkg/log"
)

// Handler is the public interface for the video HTTP delivery layer.
type Handler interface {
	Search(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc video.UseCase
}

// New creates a new HTTP handler for the video-assist domain.
func New(l log.Logger, uc video.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
