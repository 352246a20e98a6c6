package continuity

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the conversation continuity endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	cont := rg.Group("/continuity")
	{
		cont.POST("/snapshot", h.SaveSnapshot)
		cont.GET("/restore", h.Restore)
	}
}
