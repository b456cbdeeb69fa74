package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portsrepo "github.com/lifedash/finances/internal/core/ports/repositories"
	"github.com/lifedash/finances/internal/core/services"
	"github.com/lifedash/finances/internal/handlers"
	"github.com/lifedash/finances/internal/middleware"
	"github.com/lifedash/finances/internal/platform/config"
	"github.com/lifedash/finances/internal/repositories/kvstore"
	"github.com/lifedash/finances/internal/repositories/snapshot"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var store portsrepo.KVStore
	if cfg.RedisURL != "" {
		redisStore, err := kvstore.OpenRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("Using redis persistence")
	} else {
		store = kvstore.NewMemoryStore()
		logger.Warn("REDIS_URL not set, ledger state will not survive restarts")
	}

	ledger, err := services.NewLedger(ctx, snapshot.NewRepository(store),
		services.WithLogger(logger),
		services.WithSeedCurrency(cfg.DefaultCurrency),
	)
	if err != nil {
		logger.Error("Failed to initialize ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Materialize once at startup; the explicit endpoint covers processes
	// that stay up across a month boundary.
	created, err := ledger.MaterializeRecurring(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to materialize recurring transactions", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(created) > 0 {
		logger.Info("Recurring transactions materialized at startup", slog.Int("count", len(created)))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, ledger)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
