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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/forecast"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/handlers"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/sentiment"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/services"
	"github.com/archit2501/flavormetrics-restaurant-analytics/pkg/helper"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	config := helper.LoadConfigFromEnv()
	gin.SetMode(config.GinMode)

	// Collaborator handles are constructed once here and injected; the
	// pipelines themselves hold no mutable state.
	engine := forecast.NewSeasonalEngine(forecast.DefaultConfig())
	analyzer := sentiment.NewVaderAnalyzer()

	// Initialize pipeline services
	forecastService := services.NewForecastService(engine)
	churnService := services.NewChurnService()
	menuService := services.NewMenuService()
	sentimentService := services.NewSentimentService(analyzer)
	staffingService := services.NewStaffingService()

	// Initialize API handlers
	apiHandler := handlers.NewAPIHandler(forecastService, churnService, menuService, sentimentService, staffingService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Setup API routes
	apiHandler.SetupRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Gracefully shutdown with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
