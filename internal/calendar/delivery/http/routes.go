package http

import (
	"github.com/gin-gonic/gin"

	"examprep-backend/internal/middleware"
)

// RegisterRoutes maps the calendar handoff endpoints.
//
// The OAuth endpoints are plain GETs reached by browser navigation; only the
// handoff initiator is rate limited, since it is the one callable from page
// scripts in a loop.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar")
	{
		cal.POST("/pending", mw.RateLimit(), h.CreatePending)
		cal.GET("/auth", h.Authorize)
		cal.GET("/callback", h.Callback)
	}
}
