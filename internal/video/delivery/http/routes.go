package http

import (
	"github.com/gin-gonic/gin"

	"examprep-backend/internal/middleware"
)

// RegisterRoutes maps the video search endpoint. Rate limited: each request
// costs an upstream quota unit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/videos/search", mw.RateLimit(), h.Search)
}
