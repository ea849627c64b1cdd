package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timeadventures/internal/config"
	"timeadventures/internal/database"
	"timeadventures/internal/handlers"
	"timeadventures/internal/metrics"
	"timeadventures/internal/repository"
	"timeadventures/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, progressRepo)
	storyService := service.NewStoryService(storyRepo)
	progressService := service.NewProgressService(progressRepo)

	// Seed the built-in story catalog
	if err := storyService.SeedDefaultStories(); err != nil {
		log.Printf("Warning: Failed to seed default stories: %v", err)
	}

	// Register metrics
	registry := prometheus.NewRegistry()
	metrics.MustRegister(registry)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(userService, storyService, progressService)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", apiHandler.Index)
	mux.HandleFunc("GET /api/health", apiHandler.Health)
	mux.HandleFunc("POST /api/users/login", apiHandler.Login)
	mux.HandleFunc("GET /api/stories", apiHandler.GetStories)
	mux.HandleFunc("GET /api/progress/{userId}", apiHandler.GetProgress)
	mux.HandleFunc("GET /api/progress/{userId}/stats", apiHandler.GetStats)
	mux.HandleFunc("POST /api/progress", apiHandler.RecordProgress)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Wrap with middleware
	handler := handlers.Logging(handlers.CORS(cfg.FrontendURL, handlers.Metrics(mux)))

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
