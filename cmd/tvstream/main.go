package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	"tvstream/internal/adapter/driven"
	"tvstream/internal/adapter/driver"
	"tvstream/internal/application"
	"tvstream/internal/cache"
	"tvstream/internal/category"
	"tvstream/internal/config"
	portdriven "tvstream/internal/port/driven"
)

func logLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Create structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("starting tvstream",
		"addr", cfg.HTTP.Address+":"+cfg.HTTP.Port,
		"db_path", cfg.Store.Path,
		"playlist_ttl", cfg.Cache.PlaylistTTL,
		"log_level", cfg.Log.Level,
	)

	// Open BoltDB
	db, err := bbolt.Open(cfg.Store.Path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}()

	// Create driven adapters (repositories and external services)
	categoryRepo, err := driven.NewCategoryBoltDBRepository(db)
	if err != nil {
		log.Fatalf("failed to create category repository: %v", err)
	}
	streamRepo, err := driven.NewStreamBoltDBRepository(db)
	if err != nil {
		log.Fatalf("failed to create stream repository: %v", err)
	}
	notificationRepo, err := driven.NewNotificationBoltDBRepository(db)
	if err != nil {
		log.Fatalf("failed to create notification repository: %v", err)
	}
	tickerRepo, err := driven.NewTickerBoltDBRepository(db)
	if err != nil {
		log.Fatalf("failed to create ticker repository: %v", err)
	}
	settingsRepo, err := driven.NewSettingsBoltDBRepository(db)
	if err != nil {
		log.Fatalf("failed to create settings repository: %v", err)
	}

	playlistFetcher := driven.NewHTTPPlaylistFetcher(cfg.Fetch.Timeout)
	scoreClient := driven.NewAllFootballClient(cfg.Football.AllFootballBaseURL, cfg.Football.AllFootballAPIKey)
	fixtureProviders := []portdriven.FixtureProvider{
		driven.NewFootballDataClient(cfg.Football.FootballDataURL, cfg.Football.FootballDataAPIKey),
		driven.NewAPIFootballClient(cfg.Football.APIFootballURL, cfg.Football.RapidAPIKey),
	}
	oddsClient := driven.NewTheOddsAPIClient(cfg.Odds.BaseURL, cfg.Odds.APIKey)
	predictor := driven.NewOpenAIPredictor(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	// Create application services
	categoryService := application.NewCategoryService(
		categoryRepo,
		playlistFetcher,
		cache.New[category.Summary](cfg.Cache.PlaylistTTL),
		logger,
	)
	streamService := application.NewStreamService(streamRepo)
	notificationService := application.NewNotificationService(notificationRepo)
	tickerService := application.NewTickerService(tickerRepo)
	settingsService := application.NewSettingsService(settingsRepo)
	scoreService := application.NewScoreService(
		scoreClient,
		fixtureProviders,
		oddsClient,
		cache.New[json.RawMessage](cfg.Cache.LiveScoreTTL),
		cache.New[application.FixturesResult](cfg.Cache.FixturesTTL),
		cache.New[json.RawMessage](cfg.Cache.OddsTTL),
		logger,
	)
	predictionService := application.NewPredictionService(predictor)

	// Create HTTP handlers and routing
	router := driver.NewRouter(driver.RouterDeps{
		Categories:    driver.NewCategoryHTTPHandler(categoryService),
		Streams:       driver.NewStreamHTTPHandler(streamService),
		Notifications: driver.NewNotificationHTTPHandler(notificationService),
		Ticker:        driver.NewTickerHTTPHandler(tickerService),
		Settings:      driver.NewSettingsHTTPHandler(settingsService),
		Scores:        driver.NewScoreHTTPHandler(scoreService, cfg.Odds.APIKey != ""),
		Predictions:   driver.NewPredictionHTTPHandler(predictionService),
		Health:        driver.NewHealthHTTPHandler(),
		AdminToken:    cfg.Admin.Token,
		Logger:        logger,
	})

	handler := driver.NewCORS(cfg.CORS.AllowedOrigins).Handler(router)

	server := &http.Server{
		Addr:         cfg.HTTP.Address + ":" + cfg.HTTP.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received, shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
