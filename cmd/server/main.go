package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"flydreamair/internal/app"
	"flydreamair/internal/config"
	"flydreamair/internal/directory"
	"flydreamair/internal/handler"
	"flydreamair/internal/inventory"
	internalRedis "flydreamair/internal/redis"
	"flydreamair/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so Redis can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Redis is optional; it only backs the results cache and idempotent replay.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	// Wire dependencies.
	server := wireServer(redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Fixture-backed collaborators.
	matcher := inventory.NewMatcher()
	tripDirectory := directory.NewStatic()

	// Optional results cache.
	var cache service.ResultsCache
	if redisClient != nil {
		cache = internalRedis.NewResultsCache(redisClient)
	}

	// Initialize services.
	sessionService := service.NewSessionService(matcher, cache)
	lookupService := service.NewLookupService(tripDirectory)

	// Initialize handlers.
	sessionHandler := handler.NewSessionHandler(sessionService)
	searchHandler := handler.NewSearchHandler(sessionService, matcher)
	bookingHandler := handler.NewBookingHandler(sessionService)
	tripsHandler := handler.NewTripsHandler(lookupService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		SessionHandler: sessionHandler,
		SearchHandler:  searchHandler,
		BookingHandler: bookingHandler,
		TripsHandler:   tripsHandler,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
