package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EduardoSlee/StudentRegistry/internal/config"
	"github.com/EduardoSlee/StudentRegistry/internal/events"
	"github.com/EduardoSlee/StudentRegistry/internal/handlers"
	"github.com/EduardoSlee/StudentRegistry/internal/repositories/postgres"
	"github.com/EduardoSlee/StudentRegistry/internal/services"
	"github.com/EduardoSlee/StudentRegistry/internal/utils"
	"github.com/EduardoSlee/StudentRegistry/internal/validator"
	"github.com/EduardoSlee/StudentRegistry/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize repositories
	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{DB: db})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	publisher := newEventPublisher(cfg.Kafka, slogLogger)

	// Initialize validator
	validator := validator.New()

	// Initialize services
	serviceManager := services.NewServiceManager(repoManager.GetRepository(), publisher, slogLogger, validator)
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	handlers.SetupMiddleware(router, logger, handlers.MiddlewareConfig{
		APIKey:      cfg.APIKey,
		CORSOrigins: cfg.CORSOrigins,
	})

	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Closes the event publisher
	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	// Closes the database connection pool
	if err := repoManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown repositories: %v", err)
	}

	logger.Info("Server exited")
}

// newEventPublisher publishes to Kafka when brokers are configured and falls
// back to the log otherwise.
func newEventPublisher(cfg config.KafkaConfig, logger *slog.Logger) events.EventPublisher {
	if len(cfg.Brokers) == 0 {
		return events.NewLogEventPublisher(logger)
	}

	publisher, err := events.NewKafkaEventPublisher(cfg.Brokers, cfg.Topic, logger)
	if err != nil {
		logger.Warn("Failed to initialize Kafka publisher, logging events instead", "error", err)
		return events.NewLogEventPublisher(logger)
	}

	logger.Info("Publishing student events to Kafka", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return publisher
}
