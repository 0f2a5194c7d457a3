package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/foodiesapp/backend/config"
	"github.com/foodiesapp/backend/internal/api"
	"github.com/foodiesapp/backend/internal/database"
	"github.com/foodiesapp/backend/internal/repository"
	"github.com/foodiesapp/backend/internal/router"
	"github.com/foodiesapp/backend/internal/server"
	"github.com/foodiesapp/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	gormDB, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to record store: %v", err)
	}
	if err := database.RunMigrations(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Raw handle for health checks; only meaningful with postgres.
	var rawDB *database.DB
	if cfg.DBDriver == "postgres" {
		rawDB, err = database.New(cfg)
		if err != nil {
			log.Fatalf("Failed to open health-check connection: %v", err)
		}
		defer func() { _ = rawDB.Close() }()
	}

	s3Config, err := config.NewS3Config(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}

	storage := service.NewStorageService(s3Config)
	mealRepo := repository.NewGormMealRepository(gormDB)
	mealService := service.NewMealService(mealRepo, storage)

	mealHandler := api.NewMealHandler(mealService, storage)
	healthHandler := api.NewHealthHandler(rawDB)

	srv := server.New(cfg, router.SetupRouter(mealHandler, healthHandler))

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
