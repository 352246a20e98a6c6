package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calendarHTTP "examprep-backend/internal/calendar/delivery/http"
	chatHTTP "examprep-backend/internal/chat/delivery/http"
	"examprep-backend/internal/continuity"
	"examprep-backend/internal/model"
	videoHTTP "examprep-backend/internal/video/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "running in production mode")
	} else {
		srv.l.Infof(ctx, "running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	calendarHTTP.RegisterRoutes(api, srv.calendarHandler, srv.mw)
	srv.l.Infof(ctx, "Calendar handoff routes registered")

	if srv.chatHandler != nil {
		chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.mw)
		srv.l.Infof(ctx, "Chat proxy route registered")
	} else {
		srv.l.Infof(ctx, "Chat handler not configured, skipping chat route")
	}

	if srv.videoHandler != nil {
		videoHTTP.RegisterRoutes(api, srv.videoHandler, srv.mw)
		srv.l.Infof(ctx, "Video search route registered")
	} else {
		srv.l.Infof(ctx, "Video handler not configured, skipping video route")
	}

	if srv.continuityHandler != nil {
		continuity.RegisterRoutes(api, srv.continuityHandler)
		srv.l.Infof(ctx, "Continuity routes registered")
	}

	return nil
}
