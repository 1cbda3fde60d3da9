package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zahira986-id/Cat-Galery/internal/api"
	"github.com/zahira986-id/Cat-Galery/internal/pkg/config"
	"github.com/zahira986-id/Cat-Galery/internal/pkg/logger"
	"github.com/zahira986-id/Cat-Galery/internal/pkg/token"
	"github.com/zahira986-id/Cat-Galery/internal/repository"
	"github.com/zahira986-id/Cat-Galery/internal/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting cat gallery API")

	store, err := repository.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer store.Close()
	logger.Info("Database ready", zap.String("path", cfg.Database.Path))

	tokens := token.NewManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.ExpireHours)*time.Hour)
	limiter := buildLimiter(cfg)

	catalog := service.NewCatalog(store)
	auth := service.NewAuth(store, tokens, cfg.Auth.BcryptCost)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	api.SetupRouter(r, api.Deps{
		Catalog:   catalog,
		Auth:      auth,
		Tokens:    tokens,
		Limiter:   limiter,
		StaticDir: cfg.Server.StaticDir,
	})

	logger.Info("Listening", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// buildLimiter prefers the redis-backed auth limiter and degrades to
// the in-memory one when redis is unconfigured or unreachable.
func buildLimiter(cfg *config.Config) service.Limiter {
	window := time.Duration(cfg.Auth.RateLimitWindowSeconds) * time.Second
	maxAttempts := cfg.Auth.RateLimitMaxAttempts

	if cfg.Redis.Addr == "" {
		return service.NewMemoryLimiter(window, maxAttempts)
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis unreachable, using in-memory auth limiter", zap.Error(err))
		client.Close()
		return service.NewMemoryLimiter(window, maxAttempts)
	}

	logger.Info("Redis auth limiter enabled", zap.String("addr", cfg.Redis.Addr))
	return service.NewRedisLimiter(client, window, maxAttempts)
}
