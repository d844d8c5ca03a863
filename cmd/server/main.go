// Package main is the entry point for the HTTP API.
// It loads configuration, wires the card service to Postgres, Redis and the
// card processor, and starts the fiber server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cardcheck/internal/config"
	"cardcheck/internal/handlers"
	applog "cardcheck/internal/logger"
	"cardcheck/internal/repositories"
	"cardcheck/internal/repositories/cache"
	"cardcheck/internal/routes"
	"cardcheck/internal/services/cards"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	cfg, zlog, err := setup()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// setup loads the configuration and builds the logger. Its errors are
// reported through the standard logger since zap is not ready yet.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	zlog, err := applog.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return nil, nil, err
	}
	return cfg, zlog, nil
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	db, err := repositories.InitDB(cfg.DB, zlog)
	if err != nil {
		return err
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			zlog.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cacheService := cache.NewCacheService(redisClient, cfg.Redis.TTL)
	defer func() {
		if err := cacheService.Close(); err != nil {
			zlog.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cacheService.HealthCheck(ctx); err != nil {
		zlog.Warn("redis unavailable, card lists will not be cached until it recovers", zap.Error(err))
	}
	cancel()

	var tokenizer cards.Tokenizer
	if cfg.Cards.StripeSecretKey != "" {
		tokenizer = cards.NewStripeTokenizer(cfg.Cards.StripeSecretKey)
		zlog.Info("using stripe tokenizer")
	} else {
		if cfg.IsProduction() {
			return errors.New("STRIPE_SECRET_KEY is required in production")
		}
		tokenizer = cards.NewTestTokenizer()
		zlog.Warn("STRIPE_SECRET_KEY not set, using test tokenizer")
	}

	cardService := cards.NewService(
		repositories.NewCreditCardRepository(db),
		cacheService,
		tokenizer,
		cards.Config{
			FingerprintKey: cfg.Cards.FingerprintKey,
			DateFormat:     cfg.Cards.DateFormat,
			BatchMaxSize:   cfg.Cards.BatchMaxSize,
			BatchWorkers:   cfg.Cards.BatchWorkers,
		},
		zlog.Named("cards"),
	)

	health := handlers.NewHealthHandler(map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": cacheService.HealthCheck,
	})

	app := fiber.New(fiber.Config{
		AppName:               "cardcheck",
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/cards/check", limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		CardService:  cardService,
		Health:       health,
		CacheService: cacheService,
		JWTSecret:    cfg.JWT.Secret,
		JWTIssuer:    cfg.JWT.Issuer,
		Logger:       zlog,
	})

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	}
	return app.ShutdownWithTimeout(10 * time.Second)
}
