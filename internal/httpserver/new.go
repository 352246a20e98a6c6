package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	calendarHTTP "examprep-backend/internal/calendar/delivery/http"
	chatHTTP "examprep-backend/internal/chat/delivery/http"
	"examprep-backend/internal/continuity"
	"examprep-backend/internal/middleware"
	videoHTTP "examprep-backend/internal/video/delivery/http"
	"examprep-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Domain handlers
	calendarHandler   calendarHTTP.Handler
	chatHandler       chatHTTP.Handler
	videoHandler      videoHTTP.Handler
	continuityHandler *continuity.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	CalendarHandler   calendarHTTP.Handler
	ChatHandler       chatHTTP.Handler
	VideoHandler      videoHTTP.Handler
	ContinuityHandler *continuity.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.Default(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                cfg.Middleware,
		calendarHandler:   cfg.CalendarHandler,
		chatHandler:       cfg.ChatHandler,
		videoHandler:      cfg.VideoHandler,
		continuityHandler: cfg.ContinuityHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarHandler == nil {
		return errors.New("calendar handler is required")
	}
	return nil
}
