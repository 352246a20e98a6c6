package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Exam-prep specifics
	App         AppConfig
	GoogleOAuth GoogleOAuthConfig
	ChatAPI     ChatAPIConfig
	VideoSearch VideoSearchConfig
	Pending     PendingConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AppConfig locates the user-facing application the OAuth flow redirects back
// into.
type AppConfig struct {
	BaseURL string // e.g. http://localhost:3000
}

// GoogleOAuthConfig holds the server-side OAuth client credentials. The client
// secret is only ever used for the token exchange; it never reaches the
// browser.
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CalendarID   string
	Timezone     string
}

type ChatAPIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type VideoSearchConfig struct {
	APIKey  string
	BaseURL string
}

// PendingConfig bounds the pending-plan store.
type PendingConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Application base URL
	cfg.App.BaseURL = viper.GetString("app.base_url")
	if baseURL := viper.GetString("app_base_url"); baseURL != "" {
		cfg.App.BaseURL = baseURL
	}
	cfg.App.BaseURL = strings.TrimRight(cfg.App.BaseURL, "/")

	// Google OAuth — flat env fallbacks are the usual deployment shape
	cfg.GoogleOAuth.ClientID = viper.GetString("google_oauth.client_id")
	cfg.GoogleOAuth.ClientSecret = viper.GetString("google_oauth.client_secret")
	cfg.GoogleOAuth.RedirectURI = viper.GetString("google_oauth.redirect_uri")
	cfg.GoogleOAuth.CalendarID = viper.GetString("google_oauth.calendar_id")
	cfg.GoogleOAuth.Timezone = viper.GetString("google_oauth.timezone")
	if v := viper.GetString("google_client_id"); v != "" {
		cfg.GoogleOAuth.ClientID = v
	}
	if v := viper.GetString("google_client_secret"); v != "" {
		cfg.GoogleOAuth.ClientSecret = v
	}
	if v := viper.GetString("google_redirect_uri"); v != "" {
		cfg.GoogleOAuth.RedirectURI = v
	}

	// Chat-completion upstream
	cfg.ChatAPI.APIKey = viper.GetString("chat_api.api_key")
	cfg.ChatAPI.BaseURL = viper.GetString("chat_api.base_url")
	cfg.ChatAPI.Model = viper.GetString("chat_api.model")
	if v := viper.GetString("chat_api_key"); v != "" {
		cfg.ChatAPI.APIKey = v
	}

	// Video-search upstream
	cfg.VideoSearch.APIKey = viper.GetString("video_search.api_key")
	cfg.VideoSearch.BaseURL = viper.GetString("video_search.base_url")
	if v := viper.GetString("video_search_api_key"); v != "" {
		cfg.VideoSearch.APIKey = v
	}

	// Pending-plan store
	cfg.Pending.TTL = viper.GetDuration("pending.ttl")
	cfg.Pending.MaxEntries = viper.GetInt("pending.max_entries")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("app.base_url", "http://localhost:3000")
	viper.SetDefault("google_oauth.timezone", "UTC")
	viper.SetDefault("pending.ttl", "15m")
	viper.SetDefault("pending.max_entries", 1000)
	viper.SetDefault("rate_limit.per_min", 60)
}
