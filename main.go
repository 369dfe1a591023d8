package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "planner-backend/cmd/api"
	authRepo "planner-backend/internal/auth/repository"
	"planner-backend/pkg/config"
	"planner-backend/pkg/database"
	"planner-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(api.Models()...); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Optional Redis cache in front of the revocation list
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = authRepo.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("[WARN] Redis unavailable, revocation cache disabled: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatal("Failed to prepare upload storage:", err)
	}

	// Initialize HTTP handler
	handler := api.NewHandler(db, cfg, redisClient, store)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[Server] listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[Server] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[Server] forced shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("[Server] stopped")
}
