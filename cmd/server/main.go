package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vcas-web/vcas-backend/internal/api"
	"github.com/vcas-web/vcas-backend/internal/config"
	"github.com/vcas-web/vcas-backend/internal/database"
	"github.com/vcas-web/vcas-backend/internal/logger"
	"github.com/vcas-web/vcas-backend/internal/mailer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Best-effort: a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.LoadWithValidation()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("Starting VCAS Backend Server...")
	cfg.LogConfig(log)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	brevoMailer := mailer.NewBrevoMailer(mailer.Config{
		APIKey:     cfg.BrevoAPIKey,
		BaseURL:    cfg.BrevoBaseURL,
		StaffEmail: cfg.StaffEmail,
		SenderName: cfg.SenderName,
	}, log)

	e := api.NewRouter(&api.RouterConfig{
		DB:             db,
		Mailer:         brevoMailer,
		Logger:         log,
		AllowedOrigins: cfg.Origins(),
		RateLimit:      cfg.RateLimitRequests,
		RateBurst:      cfg.RateLimitBurst,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.APIPort)
		log.Info("HTTP server listening", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}

	log.Info("Server stopped")
}
