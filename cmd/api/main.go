package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cooknest/backend/config"
	"github.com/cooknest/backend/internal/database"
	"github.com/cooknest/backend/internal/middleware"
	"github.com/cooknest/backend/internal/router"
	"github.com/cooknest/backend/internal/server"
	"github.com/cooknest/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Redis only backs the auth rate limiter; run without it if unreachable.
	var rateLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, auth rate limiting disabled: %v", err)
	} else {
		rateLimiter = middleware.NewAuthRateLimiter(redisClient)
	}

	var imageService *service.ImageService
	if s3Cfg, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3Cfg.Client, s3Cfg.BucketName)
	}

	engine := router.SetupRouter(router.Deps{
		DB:          db,
		Auth:        service.NewAuthService(db, cfg.JWTSecret),
		Accounts:    service.NewAccountService(db),
		Recipes:     service.NewRecipeService(db),
		Likes:       service.NewLikeService(db),
		Images:      imageService,
		RateLimiter: rateLimiter,
		Origins:     cfg.AllowedOrigins,
	})

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

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
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
