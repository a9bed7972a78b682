// File: rihla/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rihla/config"
	"rihla/database"
	bookingRepo "rihla/database/repository/booking"
	"rihla/handlers"
	"rihla/routes"
	"rihla/services/booking"
	"rihla/services/recommend"
	"rihla/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	cacheClient := utils.GetCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRecordRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:   bookingRecordRepo,
		Logger: logger,
	}

	recommendationService := &recommend.DefaultRecommendationService{
		Logger: logger,
	}
	if geminiClient, err := recommend.NewGeminiClient(config.AppConfig.GeminiAPIKey); err != nil {
		logger.Warn("main: recommendation provider not configured", zap.Error(err))
	} else {
		recommendationService.Client = geminiClient
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Service:        handlers.NewServiceHandler(cacheClient),
		Booking:        handlers.NewBookingHandler(bookingService, logger),
		Recommendation: handlers.NewRecommendationHandler(recommendationService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
