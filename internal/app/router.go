package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"flydreamair/internal/handler"
	"flydreamair/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	SessionHandler *handler.SessionHandler
	SearchHandler  *handler.SearchHandler
	BookingHandler *handler.BookingHandler
	TripsHandler   *handler.TripsHandler
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Idempotent replay needs Redis; skip the middleware without it.
	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Booking-flow session routes.
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", deps.SessionHandler.Create)
			sessions.GET("/:id", deps.SessionHandler.Get)
			sessions.POST("/:id/search", deps.SearchHandler.Search)
			sessions.GET("/:id/results", deps.SearchHandler.Results)
			sessions.POST("/:id/select", deps.SearchHandler.Select)
			sessions.POST("/:id/selection/reset", deps.SearchHandler.ResetSelection)
			sessions.POST("/:id/booking", deps.BookingHandler.Submit)
			sessions.GET("/:id/fare", deps.BookingHandler.Fare)
			sessions.POST("/:id/back", deps.SessionHandler.Back)
			sessions.POST("/:id/new-search", deps.SessionHandler.NewSearch)
			sessions.POST("/:id/navigate", deps.SessionHandler.Navigate)
		}

		// Trip lookup routes.
		trips := v1.Group("/trips")
		{
			trips.POST("/lookup", deps.TripsHandler.Lookup)
		}

		// Help content.
		v1.GET("/help", handler.Help)
	}

	return router
}
