// Package routes defines the API routing configuration: every endpoint,
// its handler and the static mounts for receipts and front-end assets.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"kosh/internal/handlers"
	"kosh/internal/middleware"
	"kosh/internal/receipts"
)

// StaticDirs holds the directories served as static content.
type StaticDirs struct {
	Receipts string
	Public   string
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, h *handlers.TransactionHandler, static StaticDirs) {
	api := app.Group("/api")

	api.Get("/health", handlers.HealthCheck)
	api.Get("/transactions", h.ListTransactions)
	api.Post("/manual-entry", middleware.ReceiptUpload(), h.CreateTransaction)
	api.Put("/transactions/:id", middleware.ReceiptUpload(), h.UpdateTransaction)
	api.Delete("/transactions/:id", h.DeleteTransaction)
	api.Get("/download-excel", h.DownloadExcel)

	// Clear wipes the whole collection, so it gets the same rate limit
	// treatment as other destructive endpoints.
	api.Post("/clear", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}), h.ClearTransactions)

	app.Static(receipts.URLPrefix, static.Receipts)
	app.Static("/", static.Public)
}
