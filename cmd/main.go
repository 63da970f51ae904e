package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/michaelgreenl/tally-tracker-server/config"
	"github.com/michaelgreenl/tally-tracker-server/db"
	authhandler "github.com/michaelgreenl/tally-tracker-server/internal/auth/handler"
	authrepo "github.com/michaelgreenl/tally-tracker-server/internal/auth/repository/postgres"
	authservice "github.com/michaelgreenl/tally-tracker-server/internal/auth/service"
	counterhandler "github.com/michaelgreenl/tally-tracker-server/internal/counter/handler"
	counterrepo "github.com/michaelgreenl/tally-tracker-server/internal/counter/repository/postgres"
	counterservice "github.com/michaelgreenl/tally-tracker-server/internal/counter/service"
	"github.com/michaelgreenl/tally-tracker-server/internal/health"
	idempotencyrepo "github.com/michaelgreenl/tally-tracker-server/internal/idempotency/postgres"
	"github.com/michaelgreenl/tally-tracker-server/internal/middleware"
	"github.com/michaelgreenl/tally-tracker-server/internal/realtime"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	userRepo := authrepo.NewPostgresRepository(pool)
	counterRepo := counterrepo.NewPostgresRepository(pool)
	idempotencyStore := idempotencyrepo.NewPostgresStore(pool)

	tokenService := authservice.NewTokenService(userRepo, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience,
		cfg.AccessExpiryMin, cfg.LongAccessExpiryMin, cfg.RefreshExpiryDays)
	userService := authservice.NewUserService(userRepo, tokenService)

	hub := realtime.NewHub()
	counterService := counterservice.NewCounterService(counterRepo, hub)

	authHandler := authhandler.NewAuthHandler(userService, cfg)
	counterHandler := counterhandler.NewCounterHandler(counterService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitWindowMin) * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return !cfg.IsProduction()
		},
	}))

	protect := middleware.Protect(tokenService)
	idempotent := middleware.Idempotency(idempotencyStore)

	health.RegisterRoutes(app, pool)
	authhandler.RegisterRoutes(app, authHandler, protect)
	counterhandler.RegisterRoutes(app, counterHandler, protect, idempotent)
	realtime.RegisterRoutes(app, hub, tokenService)

	maintenance := db.NewMaintenance(idempotencyStore, userRepo,
		time.Duration(cfg.IdempotencyRetentionHrs)*time.Hour)
	go maintenance.Start(ctx)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
