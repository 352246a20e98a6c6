package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"examprep-backend/config"
	_ "examprep-backend/docs" // Swagger docs
	calendarHTTP "examprep-backend/internal/calendar/delivery/http"
	calendarUC "examprep-backend/internal/calendar/usecase"
	chatHTTP "examprep-backend/internal/chat/delivery/http"
	chatUC "examprep-backend/internal/chat/usecase"
	"examprep-backend/internal/continuity"
	"examprep-backend/internal/httpserver"
	"examprep-backend/internal/middleware"
	"examprep-backend/internal/pending"
	videoHTTP "examprep-backend/internal/video/delivery/http"
	videoUC "examprep-backend/internal/video/usecase"
	"examprep-backend/pkg/chatapi"
	"examprep-backend/pkg/log"
	"examprep-backend/pkg/videosearch"
)

// @title       ExamPrep API
// @description Exam-preparation assistant: chat tutoring, study-plan extraction, and Google Calendar handoff.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ExamPrep backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared middleware
	mw := middleware.New(logger, cfg.RateLimit.PerMin)

	// 4. Calendar handoff domain
	store := pending.New(pending.Options{
		TTL:        cfg.Pending.TTL,
		MaxEntries: cfg.Pending.MaxEntries,
	})

	calUC := calendarUC.New(logger, calendarUC.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURI:  cfg.GoogleOAuth.RedirectURI,
		CalendarID:   cfg.GoogleOAuth.CalendarID,
		Timezone:     cfg.GoogleOAuth.Timezone,
	}, store, nil, nil)
	calendarHandler := calendarHTTP.New(logger, calUC, cfg.App.BaseURL)

	if cfg.GoogleOAuth.ClientID == "" || cfg.GoogleOAuth.ClientSecret == "" || cfg.GoogleOAuth.RedirectURI == "" {
		logger.Warn(ctx, "Google OAuth not fully configured; handoff endpoints will report errors")
	}

	// 5. Chat proxy domain (optional)
	var chatHandler chatHTTP.Handler
	if cfg.ChatAPI.APIKey != "" {
		chatClient, chatErr := chatapi.New(chatapi.Config{
			APIKey:  cfg.ChatAPI.APIKey,
			Model:   cfg.ChatAPI.Model,
			BaseURL: cfg.ChatAPI.BaseURL,
		})
		if chatErr != nil {
			logger.Warnf(ctx, "Chat API not available: %v", chatErr)
		} else {
			chatHandler = chatHTTP.New(logger, chatUC.New(logger, chatClient))
		}
	} else {
		logger.Warn(ctx, "CHAT_API_KEY missing, chat route disabled")
	}

	// 6. Video-assist domain (optional)
	var videoHandler videoHTTP.Handler
	if cfg.VideoSearch.APIKey != "" {
		searcher, vErr := videosearch.New(cfg.VideoSearch.APIKey, cfg.VideoSearch.BaseURL)
		if vErr != nil {
			logger.Warnf(ctx, "Video search not available: %v", vErr)
		} else {
			videoHandler = videoHTTP.New(logger, videoUC.New(logger, searcher))
		}
	} else {
		logger.Warn(ctx, "VIDEO_SEARCH_API_KEY missing, video route disabled")
	}

	// 7. Conversation continuity
	continuityHandler := continuity.NewHandler(logger, continuity.NewSlot())

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		CalendarHandler:   calendarHandler,
		ChatHandler:       chatHandler,
		VideoHandler:      videoHandler,
		ContinuityHandler: continuityHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
