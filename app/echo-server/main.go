package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"societyBackend/app/echo-server/router"
	"societyBackend/business/favorite"
	"societyBackend/business/recommendation"
	"societyBackend/internal/middleware"
	psqlRepo "societyBackend/internal/repository/postgres"
	redisRepo "societyBackend/internal/repository/redis"
	"societyBackend/internal/rest"
	"societyBackend/pkg/config"
	"societyBackend/pkg/database"
	redisdb "societyBackend/pkg/database/redis"
	"societyBackend/pkg/logger"
	"societyBackend/pkg/metrics"
	"societyBackend/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Society API", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)
	logger.Info("Redis connected successfully")

	// Init repo
	companionRepo := psqlRepo.NewCompanionRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	bookingRepo := psqlRepo.NewBookingRepository(db)
	favoriteRepo := psqlRepo.NewFavoriteRepository(db)
	recommendationCache := redisRepo.NewRecommendationCache(redisClient)

	// Init service
	recommendationService := recommendation.NewService(
		companionRepo,
		interactionRepo,
		bookingRepo,
		favoriteRepo,
		recommendationCache,
		recommendation.DefaultConfig(),
	)
	favoriteService := favorite.NewService(favoriteRepo, companionRepo)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)
	favoriteHandler := rest.NewFavoriteHandler(favoriteService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recommendationHandler)
	router.SetFavoriteRoutes(api, favoriteHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
