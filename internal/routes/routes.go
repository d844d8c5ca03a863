// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"cardcheck/internal/handlers"
	"cardcheck/internal/middleware"
	"cardcheck/internal/models"
	"cardcheck/internal/repositories/cache"
	"cardcheck/internal/services/cards"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Dependencies are the wired services the routes need. CacheService may be
// nil when Redis is not configured.
type Dependencies struct {
	CardService  cards.Service
	Health       *handlers.HealthHandler
	CacheService *cache.CacheService
	JWTSecret    string
	JWTIssuer    string
	Logger       *zap.Logger
}

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	cardHandler := handlers.NewCreditCardHandler(deps.CardService, deps.Logger)
	authMiddleware := middleware.NewAuthMiddleware(deps.JWTSecret, deps.JWTIssuer, deps.Logger)

	if deps.Health != nil {
		app.Get("/health", deps.Health.Health)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the card check API",
			"version": handlers.Version,
			"docs":    "/api",
		})
	})

	api := app.Group("/api")
	setupCardRoutes(api, cardHandler, authMiddleware)

	if deps.CacheService != nil {
		api.Get("/admin/cache-stats", authMiddleware.Handler, middleware.HasPermission(models.PermissionReadAdmin), handlers.CacheStats(deps.CacheService))
	}
}

func setupCardRoutes(router fiber.Router, h *handlers.CreditCardHandler, auth *middleware.AuthMiddleware) {
	cardsAPI := router.Group("/cards")

	// Public endpoints (no auth required)
	cardsAPI.Get("/types", h.CardTypes)
	cardsAPI.Post("/check", h.Check)

	// Batch checks require a token
	cardsAPI.Post("/check/batch", auth.Handler, middleware.HasPermission(models.PermissionCardCheck), h.CheckBatch)

	// Linked cards, per user
	cardsAPI.Post("/", auth.Handler, middleware.HasPermission(models.PermissionCardWrite), h.LinkCard)
	cardsAPI.Get("/", auth.Handler, middleware.HasPermission(models.PermissionCardRead), h.GetCards)
	cardsAPI.Get("/:public_id", auth.Handler, middleware.HasPermission(models.PermissionCardRead), h.GetCard)
	cardsAPI.Put("/:id/default", auth.Handler, middleware.HasPermission(models.PermissionCardWrite), h.SetDefault)
	cardsAPI.Put("/:id/status", auth.Handler, middleware.HasPermission(models.PermissionCardWrite), h.SetStatus)
	cardsAPI.Delete("/:id", auth.Handler, middleware.HasPermission(models.PermissionCardWrite), h.DeleteCard)
}
