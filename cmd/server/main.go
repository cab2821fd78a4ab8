package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/bookverse/bookverse-backend/internal/config"
	"github.com/bookverse/bookverse-backend/internal/database"
	"github.com/bookverse/bookverse-backend/internal/handlers"
	"github.com/bookverse/bookverse-backend/internal/logging"
	"github.com/bookverse/bookverse-backend/internal/middleware"
	"github.com/bookverse/bookverse-backend/internal/routes"
	"github.com/bookverse/bookverse-backend/internal/seed"
	"github.com/bookverse/bookverse-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if cfg.SeedCatalog {
		if err := seed.Catalog(database.DB); err != nil {
			slog.Error("catalog seeding failed", "error", err)
			os.Exit(1)
		}
	}

	if err := seed.PromoteAdmins(database.DB, cfg.AdminEmails); err != nil {
		slog.Error("admin promotion failed", "error", err)
		os.Exit(1)
	}

	// Attach the ERROR+ database sink to the global logger
	dbLogHandler := logging.SetupWithDB(database.DB)

	// Log retention (30 days)
	cleanupDone := make(chan struct{})
	logging.StartRetention(database.DB, cleanupDone)

	// Services
	emailService := services.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom, !cfg.IsProduction())
	authService := services.NewAuthService(database.DB, cfg, emailService)
	catalogService := services.NewCatalogService(database.DB)
	reviewService := services.NewReviewService(database.DB)

	// Handlers
	homeHandler := handlers.NewHomeHandler()
	healthHandler := handlers.NewHealthHandler(database.DB)
	authHandler := handlers.NewAuthHandler(authService)
	bookHandler := handlers.NewBookHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, homeHandler, healthHandler, authHandler, bookHandler, reviewHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
