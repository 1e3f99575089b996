package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"hero-streets/backend/internal/api"
	"hero-streets/backend/internal/config"
	"hero-streets/backend/internal/llm"
	"hero-streets/backend/internal/mail"
	"hero-streets/backend/internal/service"
)

// App bundles the wired HTTP server so tests can construct the full
// application without starting it.
type App struct {
	Server *http.Server
}

// NewApp wires the application dependencies in order: provider client,
// services, handlers, router, server.
func NewApp(cfg *config.Config) *App {
	provider := llm.NewDeepSeekProvider(cfg.DeepSeekAPIURL, cfg.DeepSeekAPIKey, llm.Options{
		Model:       cfg.DeepSeekModel,
		Temperature: cfg.DeepSeekTemperature,
		MaxTokens:   cfg.DeepSeekMaxTokens,
	})
	relayService := service.NewRelayService(provider, cfg.DeepSeekAPIKey != "")

	var sender mail.Sender
	if cfg.MailConfigured() {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.RecipientEmail)
	} else {
		slog.Warn("SMTP credentials not set; excursion requests will be accepted but not delivered.")
	}
	excursionService := service.NewExcursionService(sender)

	chatHandler := api.NewChatHandler(relayService)
	mailHandler := api.NewMailHandler(excursionService)
	router := api.NewRouter(chatHandler, mailHandler, cfg.Origins())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server}
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	if cfg.DeepSeekAPIKey == "" {
		slog.Warn("DEEPSEEK_API_KEY is not set; every chat request will be rejected until it is configured.")
	}

	app := NewApp(cfg)

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
