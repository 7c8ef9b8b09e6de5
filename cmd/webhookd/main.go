package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"fitsync/internal/config"
	"fitsync/internal/service"
	"fitsync/internal/source/strava"
	"fitsync/internal/storage/postgres"
	"fitsync/internal/webhook"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	activityStore := postgres.NewActivityStore(db)
	ftpStore := postgres.NewFTPStore(db)
	connectionStore := postgres.NewConnectionStore(db)

	tokens := strava.NewOAuthTokenSource(
		cfg.Strava.BaseURL,
		cfg.Strava.ClientID,
		cfg.Strava.ClientSecret,
		connectionStore,
		logger,
	)

	source := strava.New(strava.Config{
		BaseURL:          cfg.Strava.BaseURL,
		PageSize:         cfg.Strava.PageSize,
		Timeout:          cfg.Strava.Timeout,
		MaxAttempts:      cfg.Strava.Retry.MaxAttempts,
		InitialBackoff:   cfg.Strava.Retry.InitialBackoff,
		MaxBackoff:       cfg.Strava.Retry.MaxBackoff,
		StreamBatchSize:  cfg.Strava.StreamBatchSize,
		StreamBatchDelay: cfg.Strava.StreamBatchDelay,
	}, tokens, logger)

	// webhook-triggered syncs write directly; no event re-publishing
	activitySyncer := service.NewActivitySyncer(
		source,
		activityStore,
		ftpStore,
		connectionStore,
		nil,
		logger,
		cfg.Sync,
	)

	events := service.NewEventHandler(
		activitySyncer,
		activityStore,
		connectionStore,
		source.Provider(),
		logger,
	)

	server := webhook.New(events, cfg.Webhook.VerifyToken, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("webhook server shutdown error", "error", err)
		}
	}()

	if err := server.Start(cfg.Webhook.Addr); err != nil && err != http.ErrServerClosed {
		logger.Error("webhook server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
