package routes

import (
	"time"

	"github.com/alrodriguezdg/youstream/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Setup registers all routes. Paths are kept where existing clients expect
// them: account endpoints at the root, catalog endpoints under /api/videos.
func Setup(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	videoHandler *handlers.VideoHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Auth rate limit: 10 req/min per IP (stricter than the API-wide one)
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	app.Get("/health", healthHandler.Check)
	app.Get("/entertainment-types", authHandler.EntertainmentTypes)

	app.Post("/register", authLimiter, authHandler.Register)
	app.Post("/check-username", authLimiter, authHandler.CheckUsername)
	app.Post("/login", authLimiter, authHandler.Login)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	videos := api.Group("/videos")
	videos.Get("/search", videoHandler.Search)
	videos.Get("/popular", videoHandler.Popular)
	videos.Get("/categories", videoHandler.Categories)
}
