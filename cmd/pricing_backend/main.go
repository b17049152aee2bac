package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/product_pricing_app/internal/core/services"
	"github.com/SscSPs/product_pricing_app/internal/handlers"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/SscSPs/product_pricing_app/internal/platform/config"
	"github.com/SscSPs/product_pricing_app/internal/platform/seed"
	"github.com/SscSPs/product_pricing_app/internal/repositories/cache"
	"github.com/SscSPs/product_pricing_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/product_pricing_app/internal/repositories/memory"
	"github.com/SscSPs/product_pricing_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Product Pricing API
// @version 1.0
// @description Currency registry, product catalog and product price ledger.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		logger.Info("Redis connection established.")
	}

	var tokenStore repositories.TokenRevocationStore
	if redisClient != nil {
		tokenStore = cache.NewRedisTokenStore(redisClient)
	} else {
		tokenStore = cache.NewMemoryTokenStoreWithLimits(cfg.RevokedTokenCapacity, cfg.JWTExpiryDuration)
	}

	var repos repositories.RepositoryProvider
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage; data is lost on restart")
		repos = memory.NewRepositoryProvider(memory.NewStore(), tokenStore)
	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
				logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		repos = pgsql.NewRepositoryProvider(dbPool, tokenStore)
	}

	if cfg.SeedDemoData {
		if err := seed.DemoData(ctx, repos, logger); err != nil {
			logger.Error("Failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, "pricing:login", redisClient)
	if err != nil {
		logger.Error("Failed to create login rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, loginLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
