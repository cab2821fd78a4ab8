package routes

import (
	"time"

	"github.com/bookverse/bookverse-backend/internal/config"
	"github.com/bookverse/bookverse-backend/internal/handlers"
	"github.com/bookverse/bookverse-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	homeHandler *handlers.HomeHandler,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	bookHandler *handlers.BookHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	// Marketing homepage, outside the API surface
	app.Get("/", homeHandler.Index)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Catalog — reads are public, mutations need an admin bearer token
	books := api.Group("/books")
	books.Get("/", bookHandler.List)
	books.Post("/", middleware.JWTProtected(cfg), middleware.AdminRequired(db), bookHandler.Create)
	books.Get("/:id", bookHandler.Get)
	books.Delete("/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(db), bookHandler.Delete)

	// Reviews — submission carries the reviewer id in the body, not a token
	reviews := api.Group("/reviews")
	reviews.Get("/:id", reviewHandler.ListByBook)
	reviews.Post("/", reviewHandler.Submit)

	// Users — credential endpoints get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	users := api.Group("/users")
	users.Post("/register", authLimiter, authHandler.Register)
	users.Post("/verify-otp", authLimiter, authHandler.VerifyOTP)
	users.Post("/login", authLimiter, authHandler.Login)
	users.Get("/:id", middleware.JWTProtected(cfg), authHandler.GetProfile)
	users.Put("/:id", middleware.JWTProtected(cfg), authHandler.UpdateProfile)
}
