package http

import (
	"github.com/gin-gonic/gin"

	"examprep-backend/internal/middleware"
)

// RegisterRoutes maps the chat proxy endpoint. Rate limited: each request
// costs an upstream completion call.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Respond)
}
